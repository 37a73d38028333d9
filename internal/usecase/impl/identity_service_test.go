package impl

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	mockRepo "arena/internal/mocks/repository"
	mockSvc "arena/internal/mocks/service"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityFixtures struct {
	service *identityService
	store   *fakeAccounts
	tokens  *mockSvc.MockSessionTokenService
	otp     *mockSvc.MockOTPService
}

func createTestIdentityService(t *testing.T) identityFixtures {
	store := newFakeAccounts()
	tokens := mockSvc.NewMockSessionTokenService(t)
	otp := mockSvc.NewMockOTPService(t)

	srv := NewIdentityService(IdentityServiceParams{
		TxManager:    store,
		AccountRepo:  store,
		TokenService: tokens,
		OTP:          otp,
		Logger:       discardLogger(),
	}).(*identityService)

	return identityFixtures{service: srv, store: store, tokens: tokens, otp: otp}
}

func githubInput(externalID, name string) usecase.ProvisionInput {
	return usecase.ProvisionInput{
		ExternalID:  externalID,
		Email:       name + "@example.com",
		DisplayName: name,
		AvatarURL:   "https://avatars.example.com/" + externalID,
		Source:      entity.AuthSourceGitHub,
	}
}

func TestIdentityService_ProvisionOrLogin_CreatesAccount(t *testing.T) {
	fx := createTestIdentityService(t)

	resp := fx.service.ProvisionOrLogin(context.Background(), githubInput("583231", "octocat"))

	require.Equal(t, entity.ResultSuccess, resp.Code)
	profile, ok := resp.Data.(*entity.AccountProfile)
	require.True(t, ok)
	assert.Equal(t, "octocat", profile.Name)
	assert.Equal(t, "octocat@example.com", profile.Email)
	assert.Equal(t, entity.DefaultElo, profile.Elo)
	assert.Equal(t, entity.AuthSourceGitHub, profile.AuthSource)
	assert.True(t, profile.IsLogin)
	assert.False(t, profile.TOTPEnabled)

	stored := fx.store.get(profile.ID)
	assert.True(t, stored.IsLogin)
	assert.Nil(t, stored.TOTPSeed)
	require.NotNil(t, stored.ExternalID)
	assert.Equal(t, "583231", *stored.ExternalID)
}

func TestIdentityService_ProvisionOrLogin_Idempotent(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	first := fx.service.ProvisionOrLogin(ctx, githubInput("1", "alice"))
	second := fx.service.ProvisionOrLogin(ctx, githubInput("1", "alice-renamed"))

	require.True(t, first.OK())
	require.True(t, second.OK())
	assert.Equal(t, first.Data.(*entity.AccountProfile).ID, second.Data.(*entity.AccountProfile).ID)
	assert.Equal(t, "alice", second.Data.(*entity.AccountProfile).Name)
	assert.Equal(t, 1, fx.store.count())
}

func TestIdentityService_ProvisionOrLogin_SameIDDifferentSource(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	github := fx.service.ProvisionOrLogin(ctx, githubInput("42", "dual-gh"))
	input := githubInput("42", "dual-42")
	input.Source = entity.AuthSourceFortyTwo
	fortyTwo := fx.service.ProvisionOrLogin(ctx, input)

	require.True(t, github.OK())
	require.True(t, fortyTwo.OK())
	assert.NotEqual(t, github.Data.(*entity.AccountProfile).ID, fortyTwo.Data.(*entity.AccountProfile).ID)
	assert.Equal(t, 2, fx.store.count())
}

func TestIdentityService_ProvisionOrLogin_Concurrent(t *testing.T) {
	fx := createTestIdentityService(t)

	const callers = 32
	ids := make([]uuid.UUID, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := fx.service.ProvisionOrLogin(context.Background(), githubInput("race", "racer"))
			if assert.True(t, resp.OK()) {
				ids[i] = resp.Data.(*entity.AccountProfile).ID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, fx.store.count())
	assert.Equal(t, 1, fx.store.creates)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestIdentityService_ProvisionOrLogin_NameCollision(t *testing.T) {
	fx := createTestIdentityService(t)
	fx.store.put(githubAccount("other", "octocat"))

	resp := fx.service.ProvisionOrLogin(context.Background(), githubInput("new", "octocat"))

	require.True(t, resp.OK())
	name := resp.Data.(*entity.AccountProfile).Name
	assert.True(t, strings.HasPrefix(name, "octocat-"), name)
	assert.Len(t, name, len("octocat-")+8)
	assert.Equal(t, 2, fx.store.count())
}

func TestIdentityService_ProvisionOrLogin_FallbackName(t *testing.T) {
	fx := createTestIdentityService(t)

	input := githubInput("7", "")
	input.Email = "marvin@42.fr"
	resp := fx.service.ProvisionOrLogin(context.Background(), input)
	require.True(t, resp.OK())
	assert.Equal(t, "marvin", resp.Data.(*entity.AccountProfile).Name)

	input = githubInput("8", "")
	input.Email = ""
	resp = fx.service.ProvisionOrLogin(context.Background(), input)
	require.True(t, resp.OK())
	assert.Equal(t, "player", resp.Data.(*entity.AccountProfile).Name)
}

func TestIdentityService_ProvisionOrLogin_InvalidInput(t *testing.T) {
	fx := createTestIdentityService(t)

	missingID := githubInput("", "nobody")
	internal := githubInput("9", "internal")
	internal.Source = entity.AuthSourceInternal

	assert.Equal(t, entity.ResultValidationFailed, fx.service.ProvisionOrLogin(context.Background(), missingID).Code)
	assert.Equal(t, entity.ResultValidationFailed, fx.service.ProvisionOrLogin(context.Background(), internal).Code)
	assert.Zero(t, fx.store.count())
}

func TestIdentityService_ProvisionOrLogin_StorageError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(IdentityServiceParams{
		TxManager: txManager,
		Logger:    discardLogger(),
	})

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			factory.EXPECT().AccountRepo().Return(accountRepo)
			accountRepo.EXPECT().
				FindByIdentity(mock.Anything, entity.AuthSourceGitHub, "1").
				Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find account"))

			return fn(factory)
		}).
		Once()

	resp := srv.ProvisionOrLogin(context.Background(), githubInput("1", "alice"))

	assert.Equal(t, entity.ResultStorageError, resp.Code)
	assert.Equal(t, &domainerrors.ErrorInfo{Code: "DATABASE_EXECUTE_FAILED", HTTPStatus: http.StatusInternalServerError}, resp.Data)
}

func TestIdentityService_ProvisionOrLogin_NamesExhausted(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewIdentityService(IdentityServiceParams{
		TxManager: txManager,
		Logger:    discardLogger(),
	})

	var names []string
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)
			factory.EXPECT().AccountRepo().Return(accountRepo)
			accountRepo.EXPECT().FindByIdentity(mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrAccountNotFound)
			accountRepo.EXPECT().
				CreateIfAbsent(mock.Anything, mock.AnythingOfType("*entity.Account")).
				Run(func(_ context.Context, account *entity.Account) {
					names = append(names, account.Name)
				}).
				Return(false, repository.ErrAccountNameTaken)

			return fn(factory)
		}).
		Times(maxNameAttempts)

	resp := srv.ProvisionOrLogin(context.Background(), githubInput("1", "taken"))

	assert.Equal(t, entity.ResultAlreadyExists, resp.Code)
	require.Len(t, names, maxNameAttempts)
	assert.Equal(t, "taken", names[0])
	for _, name := range names[1:] {
		assert.True(t, strings.HasPrefix(name, "taken-"), name)
	}
}

func seedAccount(t *testing.T, store *fakeAccounts, withTOTP bool) *entity.Account {
	t.Helper()

	account := githubAccount("100", "player-one")
	if withTOTP {
		seed := "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"
		account.TOTPSeed = &seed
		account.TOTPEnabled = true
	}
	store.put(account)

	return account
}

func TestIdentityService_Login_WithoutSecondFactor(t *testing.T) {
	fx := createTestIdentityService(t)
	account := seedAccount(t, fx.store, false)
	expiresAt := time.Now().Add(time.Hour)

	fx.tokens.EXPECT().Verify("callback-token").
		Return(&entity.SessionClaims{AccountID: account.ID, Source: entity.AuthSourceGitHub}, nil)
	fx.tokens.EXPECT().Issue(account.ID, entity.AuthSourceGitHub).Return("refreshed", expiresAt, nil)

	resp := fx.service.Login(context.Background(), usecase.LoginInput{Token: "callback-token"})

	require.Equal(t, entity.ResultSuccess, resp.Code)
	session := resp.Data.(*entity.Session)
	assert.Equal(t, "refreshed", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	assert.Equal(t, account.ID, session.Account.ID)
	assert.True(t, session.Account.IsLogin)
	assert.True(t, fx.store.get(account.ID).IsLogin)
}

func TestIdentityService_Login_InvalidToken(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokens.EXPECT().Verify(mock.Anything).Return(nil, domainerrors.ErrSessionTokenInvalid)

	resp := fx.service.Login(context.Background(), usecase.LoginInput{Token: uuid.NewString()})

	assert.Equal(t, entity.ResultUnauthorized, resp.Code)
}

func TestIdentityService_Login_UnknownAccount(t *testing.T) {
	fx := createTestIdentityService(t)

	fx.tokens.EXPECT().Verify("token").
		Return(&entity.SessionClaims{AccountID: uuid.New(), Source: entity.AuthSourceGitHub}, nil)

	resp := fx.service.Login(context.Background(), usecase.LoginInput{Token: "token"})

	assert.Equal(t, entity.ResultNotFound, resp.Code)
}

func TestIdentityService_Login_SourceMismatch(t *testing.T) {
	fx := createTestIdentityService(t)
	account := seedAccount(t, fx.store, false)

	fx.tokens.EXPECT().Verify("token").
		Return(&entity.SessionClaims{AccountID: account.ID, Source: entity.AuthSourceGoogle}, nil)

	resp := fx.service.Login(context.Background(), usecase.LoginInput{Token: "token"})

	assert.Equal(t, entity.ResultUnauthorized, resp.Code)
	assert.False(t, fx.store.get(account.ID).IsLogin)
}

func TestIdentityService_Login_SecondFactor(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		verify   bool
		wantCode entity.ResultCode
	}{
		{name: "missing code", code: "", wantCode: entity.ResultInvalidCredentials},
		{name: "wrong code", code: "000000", verify: false, wantCode: entity.ResultInvalidCredentials},
		{name: "valid code", code: "287082", verify: true, wantCode: entity.ResultSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			account := seedAccount(t, fx.store, true)

			fx.tokens.EXPECT().Verify("token").
				Return(&entity.SessionClaims{AccountID: account.ID, Source: entity.AuthSourceGitHub, Pending: true}, nil)
			if tt.code != "" {
				fx.otp.EXPECT().VerifyCode(*account.TOTPSeed, tt.code, mock.AnythingOfType("time.Time")).Return(tt.verify, nil)
			}
			if tt.wantCode == entity.ResultSuccess {
				fx.tokens.EXPECT().Issue(account.ID, entity.AuthSourceGitHub).Return("refreshed", time.Now().Add(time.Hour), nil)
			}

			resp := fx.service.Login(context.Background(), usecase.LoginInput{Token: "token", TOTPCode: tt.code})

			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantCode == entity.ResultSuccess, fx.store.get(account.ID).IsLogin)
			if session, ok := resp.Data.(*entity.Session); ok {
				assert.False(t, session.MFARequired)
			}
		})
	}
}

func TestIdentityService_LogoutAndProfile(t *testing.T) {
	fx := createTestIdentityService(t)
	account := seedAccount(t, fx.store, true)
	account.IsLogin = true
	fx.store.put(account)
	ctx := context.Background()

	profile := fx.service.Profile(ctx, account.ID)
	require.True(t, profile.OK())
	assert.True(t, profile.Data.(*entity.AccountProfile).IsLogin)
	assert.True(t, profile.Data.(*entity.AccountProfile).TOTPEnabled)

	assert.True(t, fx.service.Logout(ctx, account.ID).OK())
	assert.False(t, fx.store.get(account.ID).IsLogin)

	assert.Equal(t, entity.ResultNotFound, fx.service.Logout(ctx, uuid.New()).Code)
	assert.Equal(t, entity.ResultNotFound, fx.service.Profile(ctx, uuid.New()).Code)
}
