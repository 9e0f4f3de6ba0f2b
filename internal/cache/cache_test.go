package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Total int            `json:"total"`
	ByKey map[string]int `json:"by_key"`
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestRedisStoreRoundTrip(t *testing.T) {
	mr, rdb := newRedis(t)
	store := New(rdb, time.Minute)
	ctx := context.Background()

	var got snapshot
	hit, err := store.Get(ctx, "catalog:v1:analytics", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := snapshot{Total: 20, ByKey: map[string]int{"Gasabo": 3}}
	require.NoError(t, store.Set(ctx, "catalog:v1:analytics", want))

	hit, err = store.Get(ctx, "catalog:v1:analytics", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	assert.Equal(t, time.Minute, mr.TTL("catalog:v1:analytics"))
}

func TestRedisStoreExpires(t *testing.T) {
	mr, rdb := newRedis(t)
	store := NewRedisStore(rdb, time.Second)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", snapshot{Total: 1}))
	mr.FastForward(2 * time.Second)

	var got snapshot
	hit, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisStoreCorruptValue(t *testing.T) {
	mr, rdb := newRedis(t)
	require.NoError(t, mr.Set("k", "not json"))

	var got snapshot
	hit, err := NewRedisStore(rdb, 0).Get(context.Background(), "k", &got)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestNoopAlwaysMisses(t *testing.T) {
	store := New(nil, time.Minute)
	require.IsType(t, Noop{}, store)

	require.NoError(t, store.Set(context.Background(), "k", 1))
	var v int
	hit, err := store.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}
