package domain

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Storage keys used by the repositories
const (
	KeyPlans = "plans"
	KeyLog   = "log"
)

// KeyValueStore is the persistence collaborator. Values are opaque bytes
// (JSON documents in practice). Get returns ErrKeyNotFound for missing keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
