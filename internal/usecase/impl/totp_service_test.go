package impl

import (
	"context"
	"testing"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	mockRepo "arena/internal/mocks/repository"
	mockSvc "arena/internal/mocks/service"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSeed = "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP"

type totpFixtures struct {
	service usecase.TOTPUsecase
	store   *fakeAccounts
	otp     *mockSvc.MockOTPService
	qrcode  *mockSvc.MockQRCodeService
}

func createTestTOTPService(t *testing.T) totpFixtures {
	store := newFakeAccounts()
	otp := mockSvc.NewMockOTPService(t)
	qr := mockSvc.NewMockQRCodeService(t)

	srv := NewTOTPService(TOTPServiceParams{
		AccountRepo: store,
		OTP:         otp,
		QRCode:      qr,
		Logger:      discardLogger(),
	})

	return totpFixtures{service: srv, store: store, otp: otp, qrcode: qr}
}

func TestTOTPService_Enroll(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "enrollee")
	fx.store.put(account)

	uri := "otpauth://totp/Transcendence:enrollee%40example.com?secret=" + testSeed
	fx.otp.EXPECT().GenerateSecret().Return(testSeed, nil)
	fx.otp.EXPECT().ProvisioningURI(testSeed, "enrollee@example.com").Return(uri)
	fx.qrcode.EXPECT().GenerateDataURL(uri).Return("data:image/png;base64,iVBORw0KGgo=", nil)

	enrollment, err := fx.service.Enroll(context.Background(), account.ID, "")

	require.NoError(t, err)
	assert.Equal(t, testSeed, enrollment.Seed)
	assert.Equal(t, uri, enrollment.OTPAuthURI)
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgo=", enrollment.QRCode)

	stored := fx.store.get(account.ID)
	require.NotNil(t, stored.TOTPSeed)
	assert.Equal(t, testSeed, *stored.TOTPSeed)
	assert.True(t, stored.TOTPEnabled)
}

func TestTOTPService_Enroll_ReplacesSeed(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "again")
	old := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	account.TOTPSeed = &old
	account.TOTPEnabled = true
	fx.store.put(account)

	fx.otp.EXPECT().VerifyCode(old, "123456", mock.AnythingOfType("time.Time")).Return(true, nil)
	fx.otp.EXPECT().GenerateSecret().Return(testSeed, nil)
	fx.otp.EXPECT().ProvisioningURI(testSeed, mock.Anything).Return("otpauth://x")
	fx.qrcode.EXPECT().GenerateDataURL("otpauth://x").Return("data:image/png;base64,AA==", nil)

	_, err := fx.service.Enroll(context.Background(), account.ID, "123456")

	require.NoError(t, err)
	assert.Equal(t, testSeed, *fx.store.get(account.ID).TOTPSeed)
}

func TestTOTPService_Enroll_ReplacingNeedsCurrentCode(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "guarded")
	old := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
	account.TOTPSeed = &old
	account.TOTPEnabled = true
	fx.store.put(account)
	ctx := context.Background()

	fx.otp.EXPECT().VerifyCode(old, "000000", mock.AnythingOfType("time.Time")).Return(false, nil)

	_, err := fx.service.Enroll(ctx, account.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrTOTPRequired)

	_, err = fx.service.Enroll(ctx, account.ID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTOTPCode)

	assert.Equal(t, old, *fx.store.get(account.ID).TOTPSeed)
}

func TestTOTPService_Enroll_UnknownAccount(t *testing.T) {
	fx := createTestTOTPService(t)

	_, err := fx.service.Enroll(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	assert.Equal(t, entity.ResultNotFound, domainerrors.KindOf(err))
}

func TestTOTPService_Enroll_StorageFailureLeavesAccountUnchanged(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	otp := mockSvc.NewMockOTPService(t)
	qr := mockSvc.NewMockQRCodeService(t)
	srv := NewTOTPService(TOTPServiceParams{
		AccountRepo: accountRepo,
		OTP:         otp,
		QRCode:      qr,
		Logger:      discardLogger(),
	})
	account := githubAccount("1", "unlucky")

	accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	otp.EXPECT().GenerateSecret().Return(testSeed, nil)
	otp.EXPECT().ProvisioningURI(testSeed, mock.Anything).Return("otpauth://x")
	qr.EXPECT().GenerateDataURL("otpauth://x").Return("data:image/png;base64,AA==", nil)
	accountRepo.EXPECT().UpdateTOTP(mock.Anything, account.ID, mock.Anything, true).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "update totp")).
		Once()

	enrollment, err := srv.Enroll(context.Background(), account.ID, "")

	assert.Nil(t, enrollment)
	assert.Equal(t, entity.ResultStorageError, domainerrors.KindOf(err))
}

func TestTOTPService_Enroll_QRFailureSkipsWrite(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "qrless")
	fx.store.put(account)

	fx.otp.EXPECT().GenerateSecret().Return(testSeed, nil)
	fx.otp.EXPECT().ProvisioningURI(testSeed, mock.Anything).Return("otpauth://x")
	fx.qrcode.EXPECT().GenerateDataURL("otpauth://x").Return("", errors.New("content too long"))

	_, err := fx.service.Enroll(context.Background(), account.ID, "")

	require.Error(t, err)
	stored := fx.store.get(account.ID)
	assert.Nil(t, stored.TOTPSeed)
	assert.False(t, stored.TOTPEnabled)
}

func TestTOTPService_Validate(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "validator")
	seed := testSeed
	account.TOTPSeed = &seed
	account.TOTPEnabled = true
	fx.store.put(account)
	ctx := context.Background()

	fx.otp.EXPECT().VerifyCode(testSeed, "123456", mock.AnythingOfType("time.Time")).Return(true, nil)
	fx.otp.EXPECT().VerifyCode(testSeed, "654321", mock.AnythingOfType("time.Time")).Return(false, nil)

	assert.NoError(t, fx.service.Validate(ctx, account.ID, " 123456 "))
	assert.ErrorIs(t, fx.service.Validate(ctx, account.ID, "654321"), domainerrors.ErrInvalidTOTPCode)
	assert.ErrorIs(t, fx.service.Validate(ctx, account.ID, ""), domainerrors.ErrTOTPRequired)
}

func TestTOTPService_Validate_NotEnrolled(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "plain")
	fx.store.put(account)

	err := fx.service.Validate(context.Background(), account.ID, "123456")

	assert.ErrorIs(t, err, domainerrors.ErrTOTPNotEnrolled)
}

func TestTOTPService_Remove(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "remover")
	seed := testSeed
	account.TOTPSeed = &seed
	account.TOTPEnabled = true
	fx.store.put(account)
	ctx := context.Background()

	fx.otp.EXPECT().VerifyCode(testSeed, "654321", mock.AnythingOfType("time.Time")).Return(false, nil)
	fx.otp.EXPECT().VerifyCode(testSeed, "123456", mock.AnythingOfType("time.Time")).Return(true, nil)

	assert.ErrorIs(t, fx.service.Remove(ctx, account.ID, ""), domainerrors.ErrTOTPRequired)
	assert.ErrorIs(t, fx.service.Remove(ctx, account.ID, "654321"), domainerrors.ErrInvalidTOTPCode)
	assert.True(t, fx.store.get(account.ID).TOTPEnabled)

	require.NoError(t, fx.service.Remove(ctx, account.ID, "123456"))

	stored := fx.store.get(account.ID)
	assert.Nil(t, stored.TOTPSeed)
	assert.False(t, stored.TOTPEnabled)

	assert.ErrorIs(t, fx.service.Remove(ctx, uuid.New(), ""), domainerrors.ErrAccountNotFound)
}

func TestTOTPService_Remove_NotEnrolled(t *testing.T) {
	fx := createTestTOTPService(t)
	account := githubAccount("1", "plain")
	fx.store.put(account)

	assert.NoError(t, fx.service.Remove(context.Background(), account.ID, ""))
}
