package distributed

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Polsaker/dongerdong/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	publishTimeout = 2 * time.Second
	// queued announcements beyond this are dropped
	publishQueueSize = 256
)

// relayEnvelope is one announcement on the wire.
type relayEnvelope struct {
	Origin string              `json:"origin"`
	Item   models.Announcement `json:"announcement"`
	SentAt time.Time           `json:"sentAt"`
}

// AnnouncementRelay fans room announcements out to every instance over
// Redis Pub/Sub. Engines announce into a bounded queue that one publisher
// goroutine drains in order, and each instance's subscriber hands what it
// receives to its local sink.
type AnnouncementRelay struct {
	client     *redis.Client
	channel    string
	instanceID string
	logger     *zap.Logger
	queue      chan models.Announcement

	mu      sync.Mutex
	cancel  context.CancelFunc
	workers sync.WaitGroup
	running bool
}

// NewAnnouncementRelay gives this instance a fresh id.
func NewAnnouncementRelay(client *redis.Client, logger *zap.Logger) *AnnouncementRelay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementRelay{
		client:     client,
		channel:    "dongerdong:announcements",
		instanceID: uuid.New().String(),
		logger:     logger,
		queue:      make(chan models.Announcement, publishQueueSize),
	}
}

// Announce queues one line for publishing and never blocks. Lines are
// dropped with a warning while the queue is full.
func (r *AnnouncementRelay) Announce(roomID, text string, emphasis models.Emphasis) {
	select {
	case r.queue <- models.Announcement{RoomID: roomID, Text: text, Emphasis: emphasis}:
	default:
		r.logger.Warn("Announcement queue full, dropping line", zap.String("room", roomID))
	}
}

// Pending reports how many announcements wait to be published.
func (r *AnnouncementRelay) Pending() int {
	return len(r.queue)
}

func (r *AnnouncementRelay) Publish(ctx context.Context, item models.Announcement) error {
	data, err := json.Marshal(relayEnvelope{Origin: r.instanceID, Item: item, SentAt: time.Now()})
	if err != nil {
		return fmt.Errorf("failed to marshal announcement: %w", err)
	}

	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish announcement: %w", err)
	}
	return nil
}

// Start subscribes and delivers every received announcement to sink until
// Stop is called or ctx ends. It also starts publishing the queue. It
// returns once the subscription is confirmed.
func (r *AnnouncementRelay) Start(ctx context.Context, sink func(models.Announcement)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return nil
	}

	subCtx, cancel := context.WithCancel(ctx)
	pubsub := r.client.Subscribe(subCtx, r.channel)

	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	r.cancel = cancel
	r.running = true

	r.logger.Info("Announcement relay started",
		zap.String("instance_id", r.instanceID),
		zap.String("channel", r.channel))

	r.workers.Add(2)
	go r.publish(subCtx)
	go r.receive(subCtx, pubsub, sink)
	return nil
}

func (r *AnnouncementRelay) publish(ctx context.Context) {
	defer r.workers.Done()

	for {
		select {
		case item := <-r.queue:
			pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
			if err := r.Publish(pubCtx, item); err != nil {
				r.logger.Warn("Failed to relay announcement", zap.String("room", item.RoomID), zap.Error(err))
			}
			cancel()

		case <-ctx.Done():
			return
		}
	}
}

func (r *AnnouncementRelay) receive(ctx context.Context, pubsub *redis.PubSub, sink func(models.Announcement)) {
	defer r.workers.Done()
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			var env relayEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				r.logger.Error("Failed to unmarshal announcement", zap.Error(err))
				continue
			}
			sink(env.Item)

		case <-ctx.Done():
			r.logger.Info("Announcement relay stopped")
			return
		}
	}
}

// Stop ends the subscription and the publisher and waits for both to exit.
// Lines still queued stay queued for a later Start.
func (r *AnnouncementRelay) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}

	r.cancel()
	r.workers.Wait()
	r.cancel, r.running = nil, false
}
