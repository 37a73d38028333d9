// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/lifecycle"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	// maxNameAttempts bounds how many display names are tried for a new account.
	maxNameAttempts = 5
	nameRetryDelay  = 10 * time.Millisecond
	maxNameLength   = 64
	nameSuffixLen   = 8
	fallbackName    = "player"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	tokenService service.SessionTokenService
	otp          service.OTPService
	metrics      service.AuthMetrics
	now          func() time.Time
	inflight     singleflight.Group
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	TokenService service.SessionTokenService
	OTP          service.OTPService
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopAuthMetrics{}
	}

	return &identityService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		otp:          params.OTP,
		metrics:      metrics,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProvisionOrLogin resolves a federated identity to its account, creating it on first sight.
// Concurrent calls for the same identity share one resolution.
func (srv *identityService) ProvisionOrLogin(ctx context.Context, input usecase.ProvisionInput) entity.DbResponse {
	if input.ExternalID == "" || !input.Source.IsFederated() {
		return domainerrors.ToResponse(domainerrors.ErrValidationFailed.WithDetails("federated identity is incomplete"))
	}

	key := input.Source.String() + ":" + input.ExternalID
	result, err, shared := srv.inflight.Do(key, func() (any, error) {
		// Detached so one caller going away does not fail the others.
		workCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		return srv.provision(workCtx, input)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve federated identity",
			slog.String("source", input.Source.String()),
			slog.String("externalID", input.ExternalID),
			slog.Any("error", err),
		)

		return domainerrors.ToResponse(err)
	}

	account := result.(*entity.Account)
	srv.log(ctx).Debug("Federated identity resolved",
		slog.String("accountID", account.ID.String()),
		slog.String("source", input.Source.String()),
		slog.Bool("shared", shared),
	)

	return entity.Success(account.Profile())
}

func (srv *identityService) provision(ctx context.Context, input usecase.ProvisionInput) (*entity.Account, error) {
	profile := &entity.ExternalProfile{
		Source:      input.Source,
		ExternalID:  input.ExternalID,
		Email:       input.Email,
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
	}
	baseName := preferredName(input)

	var (
		account *entity.Account
		attempt int
	)
	backoff := retry.WithMaxRetries(maxNameAttempts-1, retry.NewConstant(nameRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		name := baseName
		if attempt > 0 {
			name = suffixedName(baseName)
		}
		attempt++

		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			accountRepo := repoFactory.AccountRepo()

			existing, err := accountRepo.FindByIdentity(ctx, input.Source, input.ExternalID)
			switch {
			case err == nil:
				account = existing
			case errors.Is(err, repository.ErrAccountNotFound):
				candidate := entity.NewFederatedAccount(profile, name)
				created, err := accountRepo.CreateIfAbsent(ctx, candidate)
				if err != nil {
					return errors.Wrap(err, "failed to create account")
				}
				if created {
					srv.log(ctx).Info("Account created",
						slog.String("accountID", candidate.ID.String()),
						slog.String("source", input.Source.String()),
					)
				}
				account = candidate
			default:
				return errors.Wrap(err, "failed to find account by identity")
			}

			if err := accountRepo.SetLoginFlag(ctx, account.ID, true); err != nil {
				return errors.Wrap(err, "failed to set login flag")
			}
			account.IsLogin = true

			return nil
		})
		if errors.Is(err, repository.ErrAccountNameTaken) {
			return retry.RetryableError(err)
		}

		return err
	})
	if err != nil {
		return nil, toDomainError(err)
	}

	return account, nil
}

// Login completes the second step of a federated login.
func (srv *identityService) Login(ctx context.Context, input usecase.LoginInput) entity.DbResponse {
	session, err := srv.login(ctx, input)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.Any("error", err))
		resp := domainerrors.ToResponse(err)
		srv.metrics.ObserveLogin(resp.Code)

		return resp
	}
	srv.metrics.ObserveLogin(entity.ResultSuccess)

	return entity.Success(session)
}

func (srv *identityService) login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	claims, err := srv.tokenService.Verify(input.Token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		return nil, toDomainError(err)
	}
	if account.AuthSource != claims.Source {
		return nil, domainerrors.ErrSessionTokenInvalid.WithDetails("token source does not match account")
	}

	if account.HasSecondFactor() {
		if err := srv.checkSecondFactor(*account.TOTPSeed, input.TOTPCode); err != nil {
			return nil, err
		}
	}

	if err := srv.accountRepo.SetLoginFlag(ctx, account.ID, true); err != nil {
		return nil, toDomainError(err)
	}
	account.IsLogin = true

	srv.log(ctx).Info("Account logged in", slog.String("accountID", account.ID.String()))

	return issueSession(srv.tokenService, account.Profile())
}

func (srv *identityService) checkSecondFactor(seed, code string) error {
	if strings.TrimSpace(code) == "" {
		return domainerrors.ErrTOTPRequired
	}

	ok, err := srv.otp.VerifyCode(seed, strings.TrimSpace(code), srv.now())
	if err != nil {
		return errors.Wrap(err, "stored totp seed is unusable")
	}
	if !ok {
		return domainerrors.ErrInvalidTOTPCode
	}

	return nil
}

// Logout clears the login flag of the account.
func (srv *identityService) Logout(ctx context.Context, accountID uuid.UUID) entity.DbResponse {
	if err := srv.accountRepo.SetLoginFlag(ctx, accountID, false); err != nil {
		srv.log(ctx).Warn("Logout failed", slog.String("accountID", accountID.String()), slog.Any("error", err))

		return domainerrors.ToResponse(toDomainError(err))
	}
	srv.log(ctx).Info("Account logged out", slog.String("accountID", accountID.String()))

	return entity.Success(nil)
}

// Profile returns the public profile of the account.
func (srv *identityService) Profile(ctx context.Context, accountID uuid.UUID) entity.DbResponse {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return domainerrors.ToResponse(toDomainError(err))
	}

	return entity.Success(account.Profile())
}

// preferredName picks the first usable name for a new account.
func preferredName(input usecase.ProvisionInput) string {
	name := strings.TrimSpace(input.DisplayName)
	if name == "" {
		local, _, _ := strings.Cut(input.Email, "@")
		name = strings.TrimSpace(local)
	}
	if name == "" {
		name = fallbackName
	}

	return truncateRunes(name, maxNameLength-nameSuffixLen-1)
}

func suffixedName(base string) string {
	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:nameSuffixLen]
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	return string([]rune(s)[:limit])
}
