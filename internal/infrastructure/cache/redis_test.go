package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Honks int    `json:"honks"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	rc := NewRedisCache(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })
	return rc, srv
}

func TestRedisCacheSetGet(t *testing.T) {
	rc, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Connect(ctx))
	require.NoError(t, rc.Set(ctx, "k", payload{Name: "Gary", Honks: 3}, time.Minute))

	var got payload
	found, err := rc.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "Gary", Honks: 3}, got)
	assert.Equal(t, time.Minute, srv.TTL("k"))
}

func TestRedisCacheMiss(t *testing.T) {
	rc, _ := newTestCache(t)

	var got payload
	found, err := rc.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, payload{}, got)
}

func TestRedisCacheDelete(t *testing.T) {
	rc, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "a", 1, 0))
	require.NoError(t, rc.Set(ctx, "b", 2, 0))
	require.NoError(t, rc.Delete(ctx, "a", "b"))
	require.NoError(t, rc.Delete(ctx))

	assert.False(t, srv.Exists("a"))
	assert.False(t, srv.Exists("b"))
}

func TestRedisCachePing(t *testing.T) {
	rc, srv := newTestCache(t)

	assert.NoError(t, rc.Ping(context.Background()))

	srv.Close()
	assert.Error(t, rc.Ping(context.Background()))
}

func TestRedisCacheVersion(t *testing.T) {
	rc, srv := newTestCache(t)
	ctx := context.Background()

	v, err := rc.Version(ctx, "goose:1:version")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = rc.BumpVersion(ctx, "goose:1:version", time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
	assert.Equal(t, time.Hour, srv.TTL("goose:1:version"))

	v, err = rc.Version(ctx, "goose:1:version")
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)
}

func TestRedisCacheSetIfVersion(t *testing.T) {
	rc, srv := newTestCache(t)
	ctx := context.Background()

	stored, err := rc.SetIfVersion(ctx, "k", payload{Name: "Gary"}, time.Minute, "k:version", 0)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, time.Minute, srv.TTL("k"))

	_, err = rc.BumpVersion(ctx, "k:version", 0)
	require.NoError(t, err)

	stored, err = rc.SetIfVersion(ctx, "k", payload{Name: "Old"}, time.Minute, "k:version", 0)
	require.NoError(t, err)
	assert.False(t, stored)

	var got payload
	found, err := rc.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Gary", got.Name)

	stored, err = rc.SetIfVersion(ctx, "k", payload{Name: "New"}, 0, "k:version", 1)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Zero(t, srv.TTL("k"))
}
