package postgres

import (
	"context"
	"testing"

	"arena/internal/infra/persistence/model"
	"arena/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB renders SQL without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpg.New(gormpg.Config{
		DSN: "host=localhost user=arena dbname=arena sslmode=disable",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestAccountQuery_IdentityLookup(t *testing.T) {
	db := newDryRunDB(t)
	ctx := context.Background()

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		a := query.Use(tx).AccountModel
		var m model.AccountModel

		return a.WithContext(ctx).
			Where(a.AuthSource.Eq("GITHUB"), a.ExternalID.Eq("583231")).
			UnderlyingDB().
			Take(&m)
	})

	assert.Contains(t, sql, `FROM "accounts"`)
	assert.Contains(t, sql, `"accounts"."auth_source" = 'GITHUB'`)
	assert.Contains(t, sql, `"accounts"."external_id" = '583231'`)
}

func TestAccountQuery_TOTPUpdateKeepsZeroValues(t *testing.T) {
	db := newDryRunDB(t)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		a := query.Use(tx).AccountModel

		return a.WithContext(ctx).
			Select(a.TOTPSeed, a.TOTPEnabled).
			Where(a.ID.Eq(id)).
			UnderlyingDB().
			Updates(&model.AccountModel{})
	})

	assert.Contains(t, sql, `UPDATE "accounts" SET`)
	assert.Contains(t, sql, `"totp_seed"=NULL`)
	assert.Contains(t, sql, `"totp_enable"=false`)
	assert.Contains(t, sql, id.String())
}
