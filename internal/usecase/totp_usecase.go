package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// TOTPUsecase manages the second factor of an account.
type TOTPUsecase interface {
	// Enroll generates a new seed, stores it with TOTP enabled and returns the
	// provisioning material. Re-enrolling replaces the previous seed and needs
	// a valid code for the current one.
	Enroll(ctx context.Context, accountID uuid.UUID, code string) (*entity.TOTPEnrollment, error)
	// Validate checks code against the stored seed at the current time.
	Validate(ctx context.Context, accountID uuid.UUID, code string) error
	// Remove clears the seed and disables the second factor. It needs a valid
	// code when the second factor is enabled.
	Remove(ctx context.Context, accountID uuid.UUID, code string) error
}
