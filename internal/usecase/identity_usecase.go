// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ProvisionInput is a normalized identity asserted by a federated provider.
type ProvisionInput struct {
	ExternalID  string
	Email       string
	DisplayName string
	AvatarURL   string
	Source      entity.AuthSource
}

// LoginInput is the body of a second-step login: the session token issued by
// the federation callback and, for accounts with TOTP enabled, a one-time code.
type LoginInput struct {
	Token    string
	TOTPCode string
}

// IdentityUsecase resolves federated identities to accounts and manages the login flag.
// Every operation reports its outcome through a DbResponse; Data is an
// *entity.AccountProfile or an *entity.Session on success.
type IdentityUsecase interface {
	// ProvisionOrLogin finds or atomically creates the account for the identity
	// and marks it logged in.
	ProvisionOrLogin(ctx context.Context, input ProvisionInput) entity.DbResponse
	// Login verifies a session token, checks the second factor when enabled
	// and returns a refreshed session.
	Login(ctx context.Context, input LoginInput) entity.DbResponse
	// Logout clears the login flag.
	Logout(ctx context.Context, accountID uuid.UUID) entity.DbResponse
	// Profile returns the public profile of the account.
	Profile(ctx context.Context, accountID uuid.UUID) entity.DbResponse
}
