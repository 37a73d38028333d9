package impl

import (
	"context"
	"log/slog"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/usecase"

	"go.uber.org/fx"
)

// federationService implements the FederationUsecase interface.
type federationService struct {
	providers    service.OAuthProviderRegistry
	states       repository.OAuthStateStore
	identity     usecase.IdentityUsecase
	tokenService service.SessionTokenService
	metrics      service.AuthMetrics
	logger       *slog.Logger
}

// FederationServiceParams holds dependencies for FederationService, injected by Fx.
type FederationServiceParams struct {
	fx.In

	Providers    service.OAuthProviderRegistry
	States       repository.OAuthStateStore
	Identity     usecase.IdentityUsecase
	TokenService service.SessionTokenService
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewFederationService is the constructor for federationService.
func NewFederationService(params FederationServiceParams) usecase.FederationUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopAuthMetrics{}
	}

	return &federationService{
		providers:    params.Providers,
		states:       params.States,
		identity:     params.Identity,
		tokenService: params.TokenService,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

func (srv *federationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartLogin returns the URL the browser is redirected to.
func (srv *federationService) StartLogin(ctx context.Context, source entity.AuthSource) (string, error) {
	provider, err := srv.providers.Provider(source)
	if err != nil {
		return "", err
	}

	state, err := srv.states.Issue(ctx, source)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue oauth state")
	}

	return provider.AuthorizationURL(state), nil
}

// CompleteLogin handles the provider callback. Storage is only touched once the
// provider has vouched for the identity.
func (srv *federationService) CompleteLogin(ctx context.Context, input usecase.CallbackInput) entity.DbResponse {
	resp := srv.completeLogin(ctx, input)
	srv.metrics.ObserveFederation(input.Source, resp.Code)

	return resp
}

func (srv *federationService) completeLogin(ctx context.Context, input usecase.CallbackInput) entity.DbResponse {
	profile, err := srv.authenticate(ctx, input)
	if err != nil {
		srv.log(ctx).Warn("OAuth callback rejected",
			slog.String("source", input.Source.String()),
			slog.Any("error", err),
		)

		return domainerrors.ToResponse(err)
	}

	resp := srv.identity.ProvisionOrLogin(ctx, usecase.ProvisionInput{
		ExternalID:  profile.ExternalID,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		AvatarURL:   profile.AvatarURL,
		Source:      profile.Source,
	})
	if !resp.OK() {
		return resp
	}

	accountProfile, ok := resp.Data.(*entity.AccountProfile)
	if !ok {
		return domainerrors.ToResponse(domainerrors.ErrInternalError.WithDetails("resolver returned no profile"))
	}

	session, err := issueCallbackSession(srv.tokenService, accountProfile)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session", slog.Any("error", err))

		return domainerrors.ToResponse(err)
	}

	return entity.Success(session)
}

// authenticate turns a callback into a verified external profile.
func (srv *federationService) authenticate(ctx context.Context, input usecase.CallbackInput) (*entity.ExternalProfile, error) {
	if input.State == "" || input.Code == "" {
		return nil, domainerrors.ErrOAuthStateInvalid.WithDetails("state and code are required")
	}

	provider, err := srv.providers.Provider(input.Source)
	if err != nil {
		return nil, err
	}

	issuedFor, err := srv.states.Consume(ctx, input.State)
	if err != nil {
		if errors.Is(err, repository.ErrStateNotFound) {
			return nil, domainerrors.ErrOAuthStateInvalid
		}

		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid.WithDetails(err.Error()), "state store unavailable")
	}
	if issuedFor != input.Source {
		return nil, domainerrors.ErrOAuthStateInvalid.WithDetails("state was issued for another provider")
	}

	accessToken, err := provider.ExchangeCode(ctx, input.Code)
	if err != nil {
		return nil, asProviderError(err, "code exchange")
	}

	profile, err := provider.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, asProviderError(err, "profile fetch")
	}

	return profile, nil
}

// asProviderError makes sure a provider failure is reported as PROVIDER_ERROR.
func asProviderError(err error, stage string) error {
	if _, ok := domainerrors.AsAppError(err); ok {
		return err
	}

	return errors.Wrap(domainerrors.ErrProviderFailed.WithDetails(err.Error()), stage)
}
