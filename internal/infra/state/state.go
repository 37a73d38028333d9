// Package state stores the anti-forgery state of in-flight OAuth redirects.
// States live in process memory (ristretto) for a single instance or in Redis
// when several instances share callbacks.
package state

import (
	"context"
	"crypto/rand"
	"log/slog"
	"time"

	"arena/config"
	"arena/internal/domain/lifecycle"
	"arena/internal/domain/repository"
	"arena/internal/errors"
	"arena/internal/infra/base64url"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	stateBytes  = 32
	driverRedis = "redis"
	driverMem   = "memory"
)

// Params defines the dependencies of the state store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStateStore builds the store selected by stateStore.driver.
func NewStateStore(params Params) (repository.OAuthStateStore, error) {
	cfg := params.Config
	ttl := cfg.OAuth.StateTTL

	switch cfg.StateStore.Driver {
	case driverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.StateStore.Redis.Addr,
			Password: cfg.StateStore.Redis.Password,
			DB:       cfg.StateStore.Redis.DB,
		})
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})
		params.Logger.Info("OAuth state store ready", slog.String("driver", driverRedis), slog.String("addr", cfg.StateStore.Redis.Addr))

		return NewRedisStore(client, ttl), nil
	case driverMem, "":
		store, err := NewMemoryStore(ttl)
		if err != nil {
			return nil, err
		}
		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				store.Close()
				return nil
			},
		})
		params.Logger.Info("OAuth state store ready", slog.String("driver", driverMem))

		return store, nil
	default:
		return nil, errors.Errorf("unknown state store driver %q", cfg.StateStore.Driver)
	}
}

// newState returns 32 random bytes in base64url form.
func newState() (string, error) {
	raw := make([]byte, stateBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return base64url.Encode(raw), nil
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 10 * time.Minute
	}

	return ttl
}
