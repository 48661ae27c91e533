package distributed

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cooldownTimeout = 2 * time.Second

// RedisCooldown keeps the bot's post-fight break in Redis so every
// instance sees it. The key holds the end of the break in unix nanoseconds
// and expires with it.
type RedisCooldown struct {
	client   *redis.Client
	key      string
	duration time.Duration
	logger   *zap.Logger
}

// NewRedisCooldown keys the break by bot id.
func NewRedisCooldown(client *redis.Client, botID string, duration time.Duration, logger *zap.Logger) *RedisCooldown {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCooldown{
		client:   client,
		key:      "dongerdong:cooldown:" + botID,
		duration: duration,
		logger:   logger,
	}
}

// Active reports whether the break is still running at now. Redis errors
// count as no break.
func (c *RedisCooldown) Active(now time.Time) bool {
	ctx, cancel := context.WithTimeout(context.Background(), cooldownTimeout)
	defer cancel()

	value, err := c.client.Get(ctx, c.key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.logger.Warn("Failed to read bot cooldown", zap.String("key", c.key), zap.Error(err))
		return false
	}

	until, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		c.logger.Warn("Invalid bot cooldown value", zap.String("key", c.key), zap.String("value", value))
		return false
	}
	return now.Before(time.Unix(0, until))
}

// Start begins a break of the configured duration at now.
func (c *RedisCooldown) Start(now time.Time) {
	ctx, cancel := context.WithTimeout(context.Background(), cooldownTimeout)
	defer cancel()

	until := now.Add(c.duration).UnixNano()
	if err := c.client.Set(ctx, c.key, strconv.FormatInt(until, 10), c.duration).Err(); err != nil {
		c.logger.Warn("Failed to start bot cooldown", zap.String("key", c.key), zap.Error(err))
	}
}
