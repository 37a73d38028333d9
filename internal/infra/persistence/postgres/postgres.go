package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"arena/config"
	"arena/internal/domain/lifecycle"
	"arena/internal/errors"
	"arena/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolStatsInterval = 5 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the account database. The connection is checked and, when
// env.autoMigrate is set, the schema is migrated before the server starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement work goes through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	stopStats := make(chan struct{})
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := Migrate(db.WithContext(ctx)); err != nil {
					return err
				}
			}

			go watchPoolWaits(stopStats, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stopStats)

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the accounts table and its unique indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AccountModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate accounts schema")
	}

	return nil
}

// watchPoolWaits reports connection pool contention. Login bursts queue on the
// pool long before queries themselves slow down.
func watchPoolWaits(stop <-chan struct{}, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil {
		return
	}

	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waits := stats.WaitCount - last.WaitCount
			waited := stats.WaitDuration - last.WaitDuration
			last = stats

			if waits == 0 {
				continue
			}

			logger.Warn("Postgres pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Int("inUse", stats.InUse),
				slog.Int("maxOpen", stats.MaxOpenConnections),
			)
		}
	}
}
