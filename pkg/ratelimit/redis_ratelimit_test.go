package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisRateLimiter needs a Redis server on localhost:6379
func setupRedisRateLimiter(t *testing.T, limit int) (*RedisRateLimiter, *redis.Client) {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // test database
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("Redis server not available: %v", err)
	}
	client.FlushDB(ctx)
	t.Cleanup(func() { client.Close() })

	return NewRedisRateLimiter(client, "test:ratelimit:", limit, time.Minute), client
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	limiter, _ := setupRedisRateLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "@alice:test")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, err := limiter.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	assert.False(t, allowed, "bucket is drained")

	allowed, err = limiter.Allow(ctx, "@bob:test")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are independent")
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter, client := setupRedisRateLimiter(t, 1)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	require.True(t, allowed)

	exists, err := client.Exists(ctx, "test:ratelimit:@alice:test:tokens").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	require.NoError(t, limiter.Reset(ctx, "@alice:test"))

	allowed, err = limiter.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_SharedAcrossInstances(t *testing.T) {
	a, client := setupRedisRateLimiter(t, 1)
	b := NewRedisRateLimiter(client, "test:ratelimit:", 1, time.Minute)
	ctx := context.Background()

	allowed, err := a.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = b.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestNewRedisRateLimiter_Defaults(t *testing.T) {
	limiter := NewRedisRateLimiter(nil, "", 0, 0)

	assert.Equal(t, "ratelimit:", limiter.keyPrefix)
	assert.Equal(t, 60, limiter.limit)
	assert.Equal(t, time.Minute, limiter.window)
}

func TestRedisRateLimiter_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	limiter := NewRedisRateLimiter(client, "test:ratelimit:", 5, time.Minute)
	allowed, err := limiter.Allow(context.Background(), "@alice:test")
	assert.Error(t, err)
	assert.False(t, allowed)
}
