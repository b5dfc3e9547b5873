package cache_test

import (
	"context"
	"testing"

	"league/config"
	"league/internal/init/cache"
	"league/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache_Disabled(t *testing.T) {
	c, err := cache.NewCache(config.CacheConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestJSON_HitAndBump(t *testing.T) {
	c := testutil.NewCache(t)
	ctx := context.Background()

	var got []string
	gen, found, err := c.GetJSON(ctx, "names", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, c.SetJSON(ctx, gen, "names", []string{"a", "b"}))

	gen, found, err = c.GetJSON(ctx, "names", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)

	require.NoError(t, c.Bump(ctx))

	got = nil
	next, found, err := c.GetJSON(ctx, "names", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, gen+1, next)
}

func TestSetJSON_StaleGeneration(t *testing.T) {
	c := testutil.NewCache(t)
	ctx := context.Background()

	var got int64
	gen, _, err := c.GetJSON(ctx, "count", &got)
	require.NoError(t, err)

	// запись между чтением и сохранением
	require.NoError(t, c.Bump(ctx))
	require.NoError(t, c.SetJSON(ctx, gen, "count", int64(7)))

	_, found, err := c.GetJSON(ctx, "count", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSetJSON_NoGeneration(t *testing.T) {
	c := testutil.NewCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, cache.NoGeneration, "count", int64(7)))

	keys, err := c.Client.Keys(ctx, "league:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestGetJSON_CorruptValueDropped(t *testing.T) {
	c := testutil.NewCache(t)
	ctx := context.Background()

	require.NoError(t, c.Client.Set(ctx, cache.Key(0, "count"), "{", 0).Err())

	var got int64
	_, found, err := c.GetJSON(ctx, "count", &got)
	assert.Error(t, err)
	assert.False(t, found)

	exists, err := c.Client.Exists(ctx, cache.Key(0, "count")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
