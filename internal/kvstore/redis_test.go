package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/orcamento-api/internal/kvstore"
)

func newRedisStore(t *testing.T) (kvstore.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return kvstore.Redis{Client: client}, mr
}

func TestRedisSaveAndLoad(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "absent")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Save(ctx, "k", []byte(`{"data":[],"timestamp":0}`), time.Hour))
	got, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"data":[],"timestamp":0}`, string(got))
}

func TestRedisSaveAppliesTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "k", []byte("v"), time.Hour))
	require.Equal(t, time.Hour, mr.TTL("k"))

	mr.FastForward(2 * time.Hour)
	_, ok, err := store.Load(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRedisPing(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, store.Ping(context.Background(), time.Second))

	mr.Close()
	require.Error(t, store.Ping(context.Background(), 100*time.Millisecond))
}
