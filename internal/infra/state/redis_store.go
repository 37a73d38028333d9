package state

import (
	"context"
	"time"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"
	"arena/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "oauth_state:"

// RedisStore keeps states in Redis so any instance can serve the callback.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed state store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttlOrDefault(ttl)}
}

func (s *RedisStore) key(state string) string {
	return redisKeyPrefix + state
}

func (s *RedisStore) Issue(ctx context.Context, source entity.AuthSource) (string, error) {
	state, err := newState()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(state), source.String(), s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to save oauth state")
	}

	return state, nil
}

// Consume uses GETDEL so concurrent callbacks cannot both claim a state.
func (s *RedisStore) Consume(ctx context.Context, state string) (entity.AuthSource, error) {
	if state == "" {
		return "", repository.ErrStateNotFound
	}

	value, err := s.client.GetDel(ctx, s.key(state)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrStateNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to consume oauth state")
	}

	source := entity.AuthSource(value)
	if !source.IsValid() {
		return "", errors.Errorf("oauth state holds unknown source %q", value)
	}

	return source, nil
}
