package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenBucket_Allow(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(5, 1, clock.Now)

	for i := 0; i < 5; i++ {
		assert.True(t, bucket.Allow(), "request %d", i+1)
	}
	assert.False(t, bucket.Allow(), "6th request should be denied")

	clock.Advance(500 * time.Millisecond)
	assert.False(t, bucket.Allow(), "partial seconds do not refill")

	clock.Advance(600 * time.Millisecond)
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())
}

func TestTokenBucket_AllowN(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(10, 2, clock.Now)

	assert.True(t, bucket.AllowN(10))
	assert.False(t, bucket.AllowN(1))

	clock.Advance(time.Second)
	assert.False(t, bucket.AllowN(3))
	assert.True(t, bucket.AllowN(2))
}

func TestTokenBucket_RefillCapsAtCapacity(t *testing.T) {
	clock := newFakeClock()
	bucket := newTokenBucket(3, 1, clock.Now)

	require.True(t, bucket.AllowN(3))
	clock.Advance(time.Hour)

	assert.True(t, bucket.AllowN(3))
	assert.False(t, bucket.Allow())
}

func newTestLimiter(t *testing.T, capacity, refill int64) (*RateLimiter, *fakeClock) {
	clock := newFakeClock()
	rl := NewRateLimiter(capacity, refill)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func TestRateLimiter_PerKey(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, 1)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, "@alice:test")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow(ctx, "@alice:test")
	require.NoError(t, err)
	assert.False(t, ok, "alice is out of tokens")

	ok, err = rl.Allow(ctx, "@bob:test")
	require.NoError(t, err)
	assert.True(t, ok, "bob has his own bucket")
}

func TestRateLimiter_Reset(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, 1)
	ctx := context.Background()

	ok, _ := rl.Allow(ctx, "@alice:test")
	require.True(t, ok)
	ok, _ = rl.Allow(ctx, "@alice:test")
	require.False(t, ok)

	rl.Reset("@alice:test")

	ok, _ = rl.Allow(ctx, "@alice:test")
	assert.True(t, ok)
}

func TestRateLimiter_CleanupDropsIdleBuckets(t *testing.T) {
	rl, clock := newTestLimiter(t, 2, 1)
	ctx := context.Background()

	_, _ = rl.Allow(ctx, "@alice:test")
	_, _ = rl.Allow(ctx, "@bob:test")
	assert.Equal(t, 2, rl.GetStats()["active_buckets"])

	clock.Advance(rl.cleanupInterval + time.Second)
	_, _ = rl.Allow(ctx, "@bob:test")

	rl.cleanup()

	stats := rl.GetStats()
	assert.Equal(t, 1, stats["active_buckets"], "only bob's recently used bucket survives")
	assert.Equal(t, int64(2), stats["capacity"])
	assert.Equal(t, int64(1), stats["refill_rate"])
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Stop()
	rl.Stop()
}
