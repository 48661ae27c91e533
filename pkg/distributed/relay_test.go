package distributed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type collector struct {
	mu    sync.Mutex
	items []models.Announcement
}

func (c *collector) add(a models.Announcement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, a)
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func TestAnnouncementRelay_FanOut(t *testing.T) {
	client := setupRedisClient(t)
	defer client.Close()

	sender := NewAnnouncementRelay(client, nil)
	receiver := NewAnnouncementRelay(client, nil)

	var local, remote collector
	ctx := context.Background()
	require.NoError(t, sender.Start(ctx, local.add))
	defer sender.Stop()
	require.NoError(t, receiver.Start(ctx, remote.add))
	defer receiver.Stop()

	sender.Announce("!arena:test", "FIGHT", models.EmphasisBanner)

	require.Eventually(t, func() bool {
		return local.len() == 1 && remote.len() == 1
	}, 2*time.Second, 10*time.Millisecond)

	remote.mu.Lock()
	got := remote.items[0]
	remote.mu.Unlock()
	assert.Equal(t, "!arena:test", got.RoomID)
	assert.Equal(t, "FIGHT", got.Text)
	assert.Equal(t, models.EmphasisBanner, got.Emphasis)
}

func TestAnnouncementRelay_StopIsIdempotent(t *testing.T) {
	client := setupRedisClient(t)
	defer client.Close()

	r := NewAnnouncementRelay(client, nil)
	r.Stop()

	require.NoError(t, r.Start(context.Background(), func(models.Announcement) {}))
	require.NoError(t, r.Start(context.Background(), func(models.Announcement) {}), "second start is a no-op")
	r.Stop()
	r.Stop()
}

func TestAnnouncementRelay_AnnounceNeverBlocks(t *testing.T) {
	// nothing listens here, so every publish would wait for its timeout
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	core, logs := observer.New(zap.WarnLevel)
	r := NewAnnouncementRelay(client, zap.New(core))

	start := time.Now()
	for i := 0; i < publishQueueSize*4; i++ {
		r.Announce("!arena:test", "HIT", models.EmphasisNone)
	}

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, publishQueueSize, r.Pending())
	assert.Equal(t, publishQueueSize*3, logs.FilterMessage("Announcement queue full, dropping line").Len())
}
