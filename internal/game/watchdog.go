package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Ticker is anything the watchdog drives, normally the Lobby.
type Ticker interface {
	Tick(now time.Time)
}

// Watchdog polls the rooms on a fixed interval for expired challenges and idle turns.
type Watchdog struct {
	target    Ticker
	interval  time.Duration
	logger    *zap.Logger
	scheduler gocron.Scheduler
	running   bool
	mu        sync.Mutex
}

func NewWatchdog(target Ticker, interval time.Duration, logger *zap.Logger) *Watchdog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watchdog{
		target:   target,
		interval: interval,
		logger:   logger,
	}
}

// Start schedules the polling job. Ticks never overlap.
func (w *Watchdog) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			w.target.Tick(time.Now())
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to schedule watchdog: %w", err)
	}

	s.Start()
	w.scheduler = s
	w.running = true

	w.logger.Info("Starting Watchdog", zap.Duration("interval", w.interval))
	return nil
}

// Stop waits for a running tick to finish.
func (w *Watchdog) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false

	w.logger.Info("Stopping Watchdog")
	if err := w.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop watchdog: %w", err)
	}
	w.logger.Info("Watchdog stopped")
	return nil
}
