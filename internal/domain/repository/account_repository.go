// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameTaken is returned by CreateIfAbsent when the identity is new
	// but the display name is already used by another account.
	ErrAccountNameTaken = errors.New("account name taken")
)

// AccountRepository defines the storage operations on accounts.
type AccountRepository interface {
	// FindByID retrieves an account by its primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIdentity retrieves the account bound to a federated identity.
	FindByIdentity(ctx context.Context, source entity.AuthSource, externalID string) (*entity.Account, error)

	// CreateIfAbsent inserts the account unless (AuthSource, ExternalID) already exists.
	// When it exists, account is overwritten with the stored row and created is false.
	CreateIfAbsent(ctx context.Context, account *entity.Account) (created bool, err error)

	// SetLoginFlag sets is_login for the account.
	SetLoginFlag(ctx context.Context, id uuid.UUID, isLogin bool) error

	// UpdateTOTP stores the seed and the enabled flag in a single write.
	// A nil seed clears it.
	UpdateTOTP(ctx context.Context, id uuid.UUID, seed *string, enabled bool) error
}
