package usecase

import (
	"context"

	"arena/internal/domain/entity"
)

// CallbackInput is what the provider sends back to the callback route.
type CallbackInput struct {
	Source entity.AuthSource
	State  string
	Code   string
}

// FederationUsecase drives the OAuth2 authorization code flow for every provider.
type FederationUsecase interface {
	// StartLogin issues a single-use state and returns the provider authorization URL.
	StartLogin(ctx context.Context, source entity.AuthSource) (string, error)
	// CompleteLogin finishes the flow. On success Data is an *entity.Session.
	CompleteLogin(ctx context.Context, input CallbackInput) entity.DbResponse
}
