// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/errors"
	"arena/internal/infra/persistence/model"
	"arena/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements repository.AccountRepository with the GORM Gen query builder.
type accountRepository struct {
	q *query.Query
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		q: query.Use(db),
	}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	a := repo.q.AccountModel
	accountM, err := a.WithContext(ctx).Where(a.ID.Eq(id)).Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find account by id")
	}

	return toAccountDomain(accountM), nil
}

func (repo *accountRepository) FindByIdentity(ctx context.Context, source entity.AuthSource, externalID string) (*entity.Account, error) {
	a := repo.q.AccountModel
	accountM, err := a.WithContext(ctx).
		Where(
			a.AuthSource.Eq(source.String()),
			a.ExternalID.Eq(externalID),
		).
		Take()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find account by identity")
	}

	return toAccountDomain(accountM), nil
}

// CreateIfAbsent issues INSERT ... ON CONFLICT DO NOTHING, so neither a duplicate
// identity nor a duplicate name aborts the surrounding transaction. The identity
// lookup afterwards tells the three outcomes apart: the stored row is ours, another
// caller's, or missing because the name was taken.
func (repo *accountRepository) CreateIfAbsent(ctx context.Context, account *entity.Account) (bool, error) {
	if account.ExternalID == nil {
		return false, errors.New("federated account requires an external id")
	}

	accountM := fromAccountDomain(account)
	err := repo.q.AccountModel.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(accountM)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return false, repository.ErrAccountNameTaken
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "create account")
	}

	stored, err := repo.FindByIdentity(ctx, account.AuthSource, *account.ExternalID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return false, repository.ErrAccountNameTaken
	}
	if err != nil {
		return false, err
	}
	created := stored.ID == account.ID
	*account = *stored

	return created, nil
}

func (repo *accountRepository) SetLoginFlag(ctx context.Context, id uuid.UUID, isLogin bool) error {
	a := repo.q.AccountModel
	info, err := a.WithContext(ctx).
		Where(a.ID.Eq(id)).
		Update(a.IsLogin, isLogin)

	return affectedOne(info, err, "set login flag")
}

// UpdateTOTP writes seed and flag together. Select keeps a nil seed and a false
// flag in the UPDATE.
func (repo *accountRepository) UpdateTOTP(ctx context.Context, id uuid.UUID, seed *string, enabled bool) error {
	a := repo.q.AccountModel
	info, err := a.WithContext(ctx).
		Select(a.TOTPSeed, a.TOTPEnabled).
		Where(a.ID.Eq(id)).
		Updates(&model.AccountModel{
			TOTPSeed:    seed,
			TOTPEnabled: enabled,
		})

	return affectedOne(info, err, "update totp")
}

func affectedOne(info gen.ResultInfo, err error, op string) error {
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
	if info.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Avatar:      m.Avatar,
		Elo:         m.Elo,
		Status:      m.Status,
		IsLogin:     m.IsLogin,
		AuthSource:  entity.AuthSource(m.AuthSource),
		ExternalID:  m.ExternalID,
		TOTPSeed:    m.TOTPSeed,
		TOTPEnabled: m.TOTPEnabled,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Avatar:      a.Avatar,
		Elo:         a.Elo,
		Status:      a.Status,
		IsLogin:     a.IsLogin,
		AuthSource:  a.AuthSource.String(),
		ExternalID:  a.ExternalID,
		TOTPSeed:    a.TOTPSeed,
		TOTPEnabled: a.TOTPEnabled,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
