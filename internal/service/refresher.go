package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher re-runs the topic fetch on a fixed wall-clock interval. Changing
// the interval restarts the schedule; there is no mid-flight reschedule.
type Refresher struct {
	fn     func(ctx context.Context)
	logger *zap.Logger

	mu       sync.Mutex
	interval time.Duration
	cron     *cron.Cron
}

// NewRefresher creates a Refresher that invokes fn every interval once
// started. The overlap guard lives in the callback (QuizService.Refresh),
// not here.
func NewRefresher(interval time.Duration, fn func(ctx context.Context), logger *zap.Logger) *Refresher {
	return &Refresher{
		fn:       fn,
		logger:   logger,
		interval: interval,
	}
}

// Start begins the schedule. Starting an already running Refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", r.interval), func() { r.fn(ctx) }); err != nil {
		return fmt.Errorf("add refresh job: %w", err)
	}
	c.Start()
	r.cron = c

	r.logger.Info("refresh scheduler started", zap.Duration("interval", r.interval))

	return nil
}

// Stop halts the schedule. No further callback runs are started after Stop
// returns; a fetch already in flight is not cancelled.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron == nil {
		return
	}

	r.cron.Stop()
	r.cron = nil

	r.logger.Info("refresh scheduler stopped")
}

// Interval returns the currently configured interval.
func (r *Refresher) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interval
}

// SetInterval stops the schedule and restarts it with the new period.
func (r *Refresher) SetInterval(ctx context.Context, d time.Duration) error {
	if d < time.Second {
		return ErrIntervalTooShort
	}

	r.Stop()

	r.mu.Lock()
	r.interval = d
	r.mu.Unlock()

	return r.Start(ctx)
}
