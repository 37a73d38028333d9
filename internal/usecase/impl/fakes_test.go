package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"

	"github.com/google/uuid"
)

// fakeAccounts is an in-memory account store that also acts as its own
// transaction manager and repository factory.
type fakeAccounts struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]entity.Account
	creates  int
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{accounts: make(map[uuid.UUID]entity.Account)}
}

func (f *fakeAccounts) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeAccounts) AccountRepo() repository.AccountRepository {
	return f
}

func (f *fakeAccounts) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

func (f *fakeAccounts) FindByIdentity(_ context.Context, source entity.AuthSource, externalID string) (*entity.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if account, ok := f.byIdentityLocked(source, externalID); ok {
		return &account, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccounts) byIdentityLocked(source entity.AuthSource, externalID string) (entity.Account, bool) {
	for _, account := range f.accounts {
		if account.AuthSource == source && account.ExternalID != nil && *account.ExternalID == externalID {
			return account, true
		}
	}

	return entity.Account{}, false
}

func (f *fakeAccounts) CreateIfAbsent(_ context.Context, account *entity.Account) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.byIdentityLocked(account.AuthSource, *account.ExternalID); ok {
		*account = existing

		return false, nil
	}
	for _, other := range f.accounts {
		if other.Name == account.Name {
			return false, repository.ErrAccountNameTaken
		}
	}

	f.accounts[account.ID] = *account
	f.creates++

	return true, nil
}

func (f *fakeAccounts) SetLoginFlag(_ context.Context, id uuid.UUID, isLogin bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.IsLogin = isLogin
	f.accounts[id] = account

	return nil
}

func (f *fakeAccounts) UpdateTOTP(_ context.Context, id uuid.UUID, seed *string, enabled bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	account, ok := f.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.TOTPSeed = seed
	account.TOTPEnabled = enabled
	f.accounts[id] = account

	return nil
}

func (f *fakeAccounts) put(account *entity.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.accounts[account.ID] = *account
}

func (f *fakeAccounts) get(id uuid.UUID) entity.Account {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.accounts[id]
}

func (f *fakeAccounts) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.accounts)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func githubAccount(externalID, name string) *entity.Account {
	return entity.NewFederatedAccount(&entity.ExternalProfile{
		Source:      entity.AuthSourceGitHub,
		ExternalID:  externalID,
		Email:       name + "@example.com",
		DisplayName: name,
	}, name)
}
