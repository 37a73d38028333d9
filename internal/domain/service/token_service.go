package service

import (
	"time"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionTokenService issues and verifies server-signed session tokens.
type SessionTokenService interface {
	// Issue signs a token for the account. It returns the token and its expiry.
	Issue(accountID uuid.UUID, source entity.AuthSource) (token string, expiresAt time.Time, err error)

	// IssuePending signs a short-lived token that only proves the federated
	// login. It must be exchanged together with a TOTP code.
	IssuePending(accountID uuid.UUID, source entity.AuthSource) (token string, expiresAt time.Time, err error)

	// Verify checks signature, issuer and expiry, and returns the asserted claims.
	// Pending tokens verify too; callers decide whether they are acceptable.
	Verify(token string) (*entity.SessionClaims, error)
}
