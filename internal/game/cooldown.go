package game

import (
	"sync"
	"time"
)

// BotCooldown keeps the system opponent out of fights for a while after one ends.
type BotCooldown interface {
	Active(now time.Time) bool
	Start(now time.Time)
}

// MemoryCooldown is the process-local BotCooldown.
type MemoryCooldown struct {
	mu       sync.Mutex
	until    time.Time
	duration time.Duration
}

func NewMemoryCooldown(duration time.Duration) *MemoryCooldown {
	return &MemoryCooldown{duration: duration}
}

func (c *MemoryCooldown) Active(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Before(c.until)
}

func (c *MemoryCooldown) Start(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.until = now.Add(c.duration)
}
