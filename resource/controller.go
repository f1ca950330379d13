package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxWorkers is the maximum number of trials running at the same time
	// across every sweep sharing the controller.
	// If 0, defaults to 1.
	MaxWorkers int64

	// TrialsPerSecond caps how fast new trials may start.
	// If 0, unlimited. Bursts up to MaxWorkers trials.
	TrialsPerSecond float64
}

// Controller bounds the number of concurrently running trials.
type Controller struct {
	cfg Config

	workers *semaphore.Weighted
	active  atomic.Int64

	limiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}

	c := &Controller{
		cfg:     cfg,
		workers: semaphore.NewWeighted(cfg.MaxWorkers),
	}

	if cfg.TrialsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.TrialsPerSecond), int(cfg.MaxWorkers))
	}

	return c
}

// AcquireWorker reserves a worker slot.
// Blocks until the trial rate allows a start and a slot is free, or until
// ctx is done.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if err := c.workers.Acquire(ctx, 1); err != nil {
		return err
	}
	c.active.Add(1)
	return nil
}

// TryAcquireWorker attempts to reserve a worker slot without blocking.
// A rate token is only spent when a slot is free.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	if !c.workers.TryAcquire(1) {
		return false
	}
	if c.limiter != nil && !c.limiter.Allow() {
		c.workers.Release(1)
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseWorker releases a worker slot.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.active.Add(-1)
	c.workers.Release(1)
}

// Active returns the number of worker slots currently held.
func (c *Controller) Active() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// MaxWorkers returns the configured slot count.
func (c *Controller) MaxWorkers() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxWorkers
}
