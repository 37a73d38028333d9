package service

import (
	"context"

	"arena/internal/domain/entity"
)

// OAuthProvider is the capability every federated identity provider exposes.
// The authorization-code flow is written once against this interface.
type OAuthProvider interface {
	// Source returns the auth source this provider asserts.
	Source() entity.AuthSource

	// AuthorizationURL builds the provider consent URL carrying state.
	AuthorizationURL(state string) string

	// ExchangeCode trades an authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (accessToken string, err error)

	// FetchProfile loads the user's profile with an access token.
	FetchProfile(ctx context.Context, accessToken string) (*entity.ExternalProfile, error)
}

// OAuthProviderRegistry resolves the provider configured for a source.
type OAuthProviderRegistry interface {
	Provider(source entity.AuthSource) (OAuthProvider, error)
}
