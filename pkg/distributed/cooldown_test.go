package distributed

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // test database
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available:", err)
	}

	client.FlushDB(ctx)

	return client
}

func TestRedisCooldown_StartAndExpire(t *testing.T) {
	client := setupRedisClient(t)
	defer client.Close()

	c := NewRedisCooldown(client, "@dongerdong:test", 30*time.Second, nil)
	now := time.Now()

	assert.False(t, c.Active(now), "no break before the first fight")

	c.Start(now)
	assert.True(t, c.Active(now.Add(10*time.Second)))
	assert.True(t, c.Active(now.Add(29*time.Second)))
	assert.False(t, c.Active(now.Add(30*time.Second)))

	ttl, err := client.TTL(context.Background(), "dongerdong:cooldown:@dongerdong:test").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 30*time.Second)
}

func TestRedisCooldown_SharedBetweenInstances(t *testing.T) {
	client := setupRedisClient(t)
	defer client.Close()

	a := NewRedisCooldown(client, "@dongerdong:test", time.Minute, nil)
	b := NewRedisCooldown(client, "@dongerdong:test", time.Minute, nil)
	other := NewRedisCooldown(client, "@otherbot:test", time.Minute, nil)

	now := time.Now()
	a.Start(now)

	assert.True(t, b.Active(now))
	assert.False(t, other.Active(now), "breaks are per bot")
}

func TestRedisCooldown_KeyExpires(t *testing.T) {
	client := setupRedisClient(t)
	defer client.Close()

	c := NewRedisCooldown(client, "@dongerdong:test", 200*time.Millisecond, nil)
	c.Start(time.Now())

	time.Sleep(400 * time.Millisecond)

	exists, err := client.Exists(context.Background(), "dongerdong:cooldown:@dongerdong:test").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)
	assert.False(t, c.Active(time.Now()))
}

func TestRedisCooldown_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCooldown(client, "@dongerdong:test", time.Minute, nil)
	c.Start(time.Now())
	assert.False(t, c.Active(time.Now()), "errors count as no break")
}
