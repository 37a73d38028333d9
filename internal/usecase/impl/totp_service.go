package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	totpOpEnroll   = "enroll"
	totpOpValidate = "validate"
	totpOpRemove   = "remove"
)

// totpService implements the TOTPUsecase interface.
type totpService struct {
	accountRepo repository.AccountRepository
	otp         service.OTPService
	qrcode      service.QRCodeService
	metrics     service.AuthMetrics
	now         func() time.Time
	logger      *slog.Logger
}

// TOTPServiceParams holds dependencies for TOTPService, injected by Fx.
type TOTPServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OTP         service.OTPService
	QRCode      service.QRCodeService
	Metrics     service.AuthMetrics `optional:"true"`
	Logger      *slog.Logger
}

// NewTOTPService is the constructor for totpService.
func NewTOTPService(params TOTPServiceParams) usecase.TOTPUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopAuthMetrics{}
	}

	return &totpService{
		accountRepo: params.AccountRepo,
		otp:         params.OTP,
		qrcode:      params.QRCode,
		metrics:     metrics,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *totpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *totpService) observe(op string, err error) {
	srv.metrics.ObserveTOTP(op, domainerrors.KindOf(err))
}

// Enroll builds all provisioning material first and then stores seed and flag
// in one write, so a failure at any step leaves the account unchanged.
func (srv *totpService) Enroll(ctx context.Context, accountID uuid.UUID, code string) (enrollment *entity.TOTPEnrollment, err error) {
	defer func() { srv.observe(totpOpEnroll, err) }()

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, toDomainError(err)
	}
	if account.HasSecondFactor() {
		if err := srv.checkCode(account, code); err != nil {
			return nil, err
		}
	}

	seed, err := srv.otp.GenerateSecret()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp secret")
	}

	uri := srv.otp.ProvisioningURI(seed, account.AccountName())
	qr, err := srv.qrcode.GenerateDataURL(uri)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render provisioning qr code")
	}

	if err := srv.accountRepo.UpdateTOTP(ctx, accountID, &seed, true); err != nil {
		srv.log(ctx).Error("Failed to store totp seed", slog.String("accountID", accountID.String()), slog.Any("error", err))

		return nil, toDomainError(err)
	}

	srv.log(ctx).Info("TOTP enrolled", slog.String("accountID", accountID.String()))

	return &entity.TOTPEnrollment{
		Seed:       seed,
		OTPAuthURI: uri,
		QRCode:     qr,
	}, nil
}

// Validate checks a code against the stored seed.
func (srv *totpService) Validate(ctx context.Context, accountID uuid.UUID, code string) (err error) {
	defer func() { srv.observe(totpOpValidate, err) }()

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return toDomainError(err)
	}
	if !account.HasSecondFactor() {
		return domainerrors.ErrTOTPNotEnrolled
	}

	return srv.checkCode(account, code)
}

// Remove disables the second factor and forgets the seed.
func (srv *totpService) Remove(ctx context.Context, accountID uuid.UUID, code string) (err error) {
	defer func() { srv.observe(totpOpRemove, err) }()

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return toDomainError(err)
	}
	if account.HasSecondFactor() {
		if err := srv.checkCode(account, code); err != nil {
			return err
		}
	}

	if err := srv.accountRepo.UpdateTOTP(ctx, accountID, nil, false); err != nil {
		return toDomainError(err)
	}

	srv.log(ctx).Info("TOTP removed", slog.String("accountID", accountID.String()))

	return nil
}

// checkCode verifies code against the account's current seed.
func (srv *totpService) checkCode(account *entity.Account, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domainerrors.ErrTOTPRequired
	}

	ok, err := srv.otp.VerifyCode(*account.TOTPSeed, code, srv.now())
	if err != nil {
		return errors.Wrap(err, "stored totp seed is unusable")
	}
	if !ok {
		return domainerrors.ErrInvalidTOTPCode
	}

	return nil
}
