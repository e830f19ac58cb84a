package kvstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis server and returns a RedisStore instance
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore_SetThenGet(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", "abc123"))

	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, err := store.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_ValuesAreNamespaced(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Set(context.Background(), "token", "abc123"))

	got, err := mr.Get("storefront:token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestRedisStore_ValuesHaveNoTTL(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Set(context.Background(), "token", "abc123"))
	assert.Zero(t, mr.TTL("storefront:token"))
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", "abc123"))
	require.NoError(t, store.Delete(ctx, "token"))

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_DeleteMissingKeyIsNoError(t *testing.T) {
	store, _ := setupTestRedis(t)
	assert.NoError(t, store.Delete(context.Background(), "nonexistent"))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "token")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "token", "abc"))
	value, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	require.NoError(t, store.Delete(ctx, "token"))
	_, err = store.Get(ctx, "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
