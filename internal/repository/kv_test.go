package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/mansoorceksport/kinetic/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore fails every operation
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errStoreDown }
func (failingStore) Set(context.Context, string, []byte) error { return errStoreDown }
func (failingStore) Remove(context.Context, string) error { return errStoreDown }

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func exerciseStore(t *testing.T, store domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "plans", []byte(`[{"id":1}]`)))
	got, err := store.Get(ctx, "plans")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(got))

	require.NoError(t, store.Set(ctx, "plans", []byte(`[]`)))
	got, err = store.Get(ctx, "plans")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, store.Remove(ctx, "plans"))
	_, err = store.Get(ctx, "plans")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	// removing twice is fine
	require.NoError(t, store.Remove(ctx, "plans"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'x'
	got, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestPrefixedStore(t *testing.T) {
	inner := NewMemoryStore()
	store := WithPrefix(inner, "kinetic_")
	exerciseStore(t, store)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "log", []byte("[]")))
	_, err := inner.Get(ctx, "kinetic_log")
	assert.NoError(t, err)

	assert.Same(t, inner, WithPrefix(inner, "").(*MemoryStore))
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kinetic.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kinetic.db")

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "log", []byte(`["a"]`)))
	require.NoError(t, store.Close())

	store, err = OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Get(ctx, "log")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(got))
}

func TestBadgerStore(t *testing.T) {
	store, err := OpenBadgerStore(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestBadgerStoreRequiresPath(t *testing.T) {
	_, err := OpenBadgerStore(BadgerConfig{})
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	_, client := newMiniRedis(t)
	exerciseStore(t, NewRedisStore(client))
}

func TestRedisStoreTTL(t *testing.T) {
	mr, client := newMiniRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.SetWithTTL(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestRedisStoreConnectionError(t *testing.T) {
	mr, client := newMiniRedis(t)
	mr.Close()

	_, err := NewRedisStore(client).Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestCachedStore(t *testing.T) {
	_, client := newMiniRedis(t)
	exerciseStore(t, NewCachedStore(NewMemoryStore(), NewRedisStore(client), time.Minute))
}

func TestCachedStoreReadsThrough(t *testing.T) {
	mr, client := newMiniRedis(t)
	ctx := context.Background()
	primary := NewMemoryStore()
	require.NoError(t, primary.Set(ctx, "plans", []byte("[1]")))

	store := NewCachedStore(primary, NewRedisStore(client), 0)
	got, err := store.Get(ctx, "plans")
	require.NoError(t, err)
	assert.Equal(t, "[1]", string(got))

	cached, err := mr.Get("plans")
	require.NoError(t, err)
	assert.Equal(t, "[1]", cached)

	// served from cache even when the primary changes underneath
	require.NoError(t, primary.Set(ctx, "plans", []byte("[2]")))
	got, _ = store.Get(ctx, "plans")
	assert.Equal(t, "[1]", string(got))
}

func TestCachedStoreSurvivesCacheOutage(t *testing.T) {
	mr, client := newMiniRedis(t)
	mr.Close()
	ctx := context.Background()

	store := NewCachedStore(NewMemoryStore(), NewRedisStore(client), time.Minute)
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestCachedStoreFailedWriteInvalidates(t *testing.T) {
	mr, client := newMiniRedis(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("k", "stale"))

	store := NewCachedStore(failingStore{}, NewRedisStore(client), time.Minute)
	assert.ErrorIs(t, store.Set(ctx, "k", []byte("new")), errStoreDown)
	assert.False(t, mr.Exists("k"))
}

func TestS3ObjectKey(t *testing.T) {
	assert.Equal(t, "kinetic_plans.json", objectKey("kinetic_plans"))
}
