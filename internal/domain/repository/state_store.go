package repository

import (
	"context"
	"errors"

	"arena/internal/domain/entity"
)

// ErrStateNotFound is returned when an OAuth state is unknown, expired or already consumed.
var ErrStateNotFound = errors.New("oauth state not found")

// OAuthStateStore keeps the anti-forgery state of in-flight OAuth redirects.
type OAuthStateStore interface {
	// Issue creates a new random state bound to source.
	Issue(ctx context.Context, source entity.AuthSource) (string, error)

	// Consume removes the state and returns the source it was issued for.
	// A state can be consumed at most once.
	Consume(ctx context.Context, state string) (entity.AuthSource, error)
}
