package oauth

import (
	"log/slog"
	"net/http"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"go.uber.org/fx"
)

type providerConstructor func(*config.OAuthProviderConfig, *http.Client, time.Duration) service.OAuthProvider

// Params defines the dependencies of the provider registry
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type registry struct {
	providers map[entity.AuthSource]service.OAuthProvider
}

// NewRegistry builds one provider per configured client registration.
// Providers without credentials are left out and answer UNSUPPORTED_PROVIDER.
func NewRegistry(params Params) service.OAuthProviderRegistry {
	oauthCfg := params.Config.OAuth
	httpClient := &http.Client{Timeout: oauthCfg.HTTPTimeout}

	candidates := []struct {
		source entity.AuthSource
		cfg    *config.OAuthProviderConfig
		build  providerConstructor
	}{
		{entity.AuthSourceGoogle, oauthCfg.Providers.Google, NewGoogleProvider},
		{entity.AuthSourceGitHub, oauthCfg.Providers.GitHub, NewGitHubProvider},
		{entity.AuthSourceFortyTwo, oauthCfg.Providers.FortyTwo, NewFortyTwoProvider},
	}

	providers := make([]service.OAuthProvider, 0, len(candidates))
	for _, c := range candidates {
		if !c.cfg.Enabled() {
			params.Logger.Warn("OAuth provider disabled, no client credentials", slog.String("provider", c.source.String()))
			continue
		}
		providers = append(providers, c.build(c.cfg, httpClient, oauthCfg.HTTPTimeout))
		params.Logger.Info("OAuth provider enabled", slog.String("provider", c.source.String()))
	}

	return NewStaticRegistry(providers...)
}

// NewStaticRegistry indexes the given providers by source.
func NewStaticRegistry(providers ...service.OAuthProvider) service.OAuthProviderRegistry {
	r := &registry{providers: make(map[entity.AuthSource]service.OAuthProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.Source()] = p
	}

	return r
}

func (r *registry) Provider(source entity.AuthSource) (service.OAuthProvider, error) {
	p, ok := r.providers[source]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider.WithDetails(source.String())
	}

	return p, nil
}
