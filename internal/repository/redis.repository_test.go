package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func Test_redisSummaryCacheRepositoryHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		_, client := newTestRedis(t)
		cache := NewRedisSummaryCacheRepository(client, time.Minute)

		_, ok, err := cache.Get(ctx, "abc")
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, cache.Set(ctx, "abc", "markets were calm"))
		summary, ok, err := cache.Get(ctx, "abc")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "markets were calm", summary)
	})

	t.Run("entries expire", func(t *testing.T) {
		mr, client := newTestRedis(t)
		cache := NewRedisSummaryCacheRepository(client, time.Minute)

		require.NoError(t, cache.Set(ctx, "abc", "markets were calm"))
		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx, "abc")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("invalidate removes only summaries", func(t *testing.T) {
		mr, client := newTestRedis(t)
		cache := NewRedisSummaryCacheRepository(client, time.Minute)
		require.NoError(t, mr.Set("unrelated", "keep"))

		require.NoError(t, cache.Set(ctx, "a", "one"))
		require.NoError(t, cache.Set(ctx, "b", "two"))
		require.NoError(t, cache.Invalidate(ctx))

		_, ok, err := cache.Get(ctx, "a")
		require.NoError(t, err)
		require.False(t, ok)
		require.True(t, mr.Exists("unrelated"))
	})

	t.Run("unavailable redis", func(t *testing.T) {
		mr, client := newTestRedis(t)
		cache := NewRedisSummaryCacheRepository(client, time.Minute)
		mr.Close()

		_, _, err := cache.Get(ctx, "abc")
		require.Error(t, err)
	})
}

func Test_redisSymbolRepositoryHandler(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	repo := NewRedisSymbolRepository(client)

	symbols, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, symbols)

	require.NoError(t, repo.Add(ctx, "AAPL"))
	require.NoError(t, repo.Add(ctx, "MSFT"))
	require.NoError(t, repo.Add(ctx, "AAPL"))

	symbols, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"MSFT", "AAPL"}, symbols)
}
