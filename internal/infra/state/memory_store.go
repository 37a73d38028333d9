package state

import (
	"context"
	"sync"
	"time"

	"arena/internal/domain/entity"
	"arena/internal/domain/repository"
	"arena/internal/errors"

	"github.com/dgraph-io/ristretto/v2"
)

// memoryCapacity is the number of live states the cache admits before TinyLFU
// starts choosing victims. Each state costs 1, so this bounds the redirects
// started within one TTL window; at 10m that is about 400 a second.
const memoryCapacity = 1 << 18

// MemoryStore keeps states in a ristretto cache with per-entry TTL. Below
// memoryCapacity no live state is evicted; above it a state may be dropped and
// its callback fails with an invalid state, the same outcome as expiry.
type MemoryStore struct {
	cache *ristretto.Cache[string, entity.AuthSource]
	ttl   time.Duration
	mu    sync.Mutex // serializes Consume so a state is handed out once
}

// NewMemoryStore creates an in-process state store.
func NewMemoryStore(ttl time.Duration) (*MemoryStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, entity.AuthSource]{
		NumCounters:        10 * memoryCapacity,
		MaxCost:            memoryCapacity,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create state cache")
	}

	return &MemoryStore{cache: cache, ttl: ttlOrDefault(ttl)}, nil
}

func (s *MemoryStore) Issue(_ context.Context, source entity.AuthSource) (string, error) {
	state, err := newState()
	if err != nil {
		return "", err
	}
	if !s.cache.SetWithTTL(state, source, 1, s.ttl) {
		return "", errors.New("state cache rejected entry")
	}
	s.cache.Wait()

	return state, nil
}

func (s *MemoryStore) Consume(_ context.Context, state string) (entity.AuthSource, error) {
	if state == "" {
		return "", repository.ErrStateNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	source, ok := s.cache.Get(state)
	if !ok {
		return "", repository.ErrStateNotFound
	}
	s.cache.Del(state)

	return source, nil
}

// Close stops the cache's background goroutines.
func (s *MemoryStore) Close() {
	s.cache.Close()
}
