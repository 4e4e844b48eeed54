package repository

import (
	"context"

	"github.com/mansoorceksport/kinetic/internal/domain"
)

// PrefixedStore namespaces every key of the wrapped store
type PrefixedStore struct {
	next   domain.KeyValueStore
	prefix string
}

// WithPrefix wraps store so that key "plans" is stored as prefix+"plans".
// An empty prefix returns store unchanged.
func WithPrefix(store domain.KeyValueStore, prefix string) domain.KeyValueStore {
	if prefix == "" {
		return store
	}
	return &PrefixedStore{next: store, prefix: prefix}
}

func (s *PrefixedStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.next.Get(ctx, s.prefix+key)
}

func (s *PrefixedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.next.Set(ctx, s.prefix+key, value)
}

func (s *PrefixedStore) Remove(ctx context.Context, key string) error {
	return s.next.Remove(ctx, s.prefix+key)
}
