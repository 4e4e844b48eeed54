package repository

import (
	"context"
	"time"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

const defaultCacheTTL = 5 * time.Minute

// CachedStore wraps a primary store with a Redis read-through cache
type CachedStore struct {
	primary domain.KeyValueStore
	cache   *RedisStore
	ttl     time.Duration
}

// NewCachedStore creates a new cached store. ttl <= 0 uses 5 minutes.
func NewCachedStore(primary domain.KeyValueStore, cache *RedisStore, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedStore{
		primary: primary,
		cache:   cache,
		ttl:     ttl,
	}
}

// Get tries the cache first, then the primary store
func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	if data, err := s.cache.Get(ctx, key); err == nil {
		return data, nil
	}

	data, err := s.primary.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	_ = s.cache.SetWithTTL(ctx, key, data, s.ttl)

	return data, nil
}

// Set writes the primary store and refreshes the cache
func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.primary.Set(ctx, key, value); err != nil {
		// stale cache must not outlive a failed write
		_ = s.cache.Remove(ctx, key)
		return err
	}

	_ = s.cache.SetWithTTL(ctx, key, value, s.ttl)
	return nil
}

// Remove deletes from the primary store and invalidates the cache
func (s *CachedStore) Remove(ctx context.Context, key string) error {
	err := s.primary.Remove(ctx, key)
	_ = s.cache.Remove(ctx, key)
	return err
}
