package worker

import (
	"context"
	"errors"
	"fmt"
	"phishguard/pkg/logger"
	"phishguard/pkg/registry/cached"
	"phishguard/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Refresher refetches and prunes cached registrations.
type Refresher interface {
	Refresh(ctx context.Context, key string) error
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// RefreshWorker is a River worker that refetches stale registration cache
// entries. WHOIS servers throttle aggressive clients, so every job first
// reserves a slot from a shared per-minute query budget.
//
// # Pacing
//
// The budget is a fixed window: at most limit queries start between two
// resets. reserve takes one slot or blocks until the window resets. When a
// registry reports that the limit was hit anyway, the remaining budget of the
// window is dropped and the job is snoozed until the reset.
type RefreshWorker struct {
	river.WorkerDefaults[cached.RefreshArgs]

	refresher Refresher
	timeout   time.Duration

	// mu protects the fields below it.
	mu      sync.Mutex
	limit   int
	window  time.Duration
	used    int
	resetAt time.Time
	now     func() time.Time
}

// NewRefreshWorker creates a worker allowing queriesPerMinute WHOIS queries.
func NewRefreshWorker(refresher Refresher, queriesPerMinute int, timeout time.Duration) *RefreshWorker {
	if queriesPerMinute <= 0 {
		queriesPerMinute = 1
	}

	return &RefreshWorker{
		refresher: refresher,
		timeout:   timeout,
		limit:     queriesPerMinute,
		window:    time.Minute,
		now:       time.Now,
	}
}

// Timeout bounds a single refresh job.
func (w *RefreshWorker) Timeout(*river.Job[cached.RefreshArgs]) time.Duration {
	return w.timeout
}

// Work refreshes one cache entry.
func (w *RefreshWorker) Work(ctx context.Context, job *river.Job[cached.RefreshArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("domain", job.Args.Domain))

	if err := w.reserve(ctx); err != nil {
		logger.Error(ctx, "error reserving whois query slot", zap.Error(err))

		return fmt.Errorf("could not reserve whois query slot: %w", err)
	}

	if err := w.refresher.Refresh(ctx, job.Args.Domain); err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			logger.Warn(ctx, "whois rate limited, snoozing refresh", zap.Error(err))

			return river.JobSnooze(w.exhaust()) //nolint: wrapcheck
		}

		logger.Error(ctx, "error refreshing registration", zap.Error(err))

		return fmt.Errorf("could not refresh registration: %w", err)
	}

	logger.Info(ctx, "registration refreshed")

	return nil
}

// reserve takes one query slot from the current window, waiting for the
// next window when the budget is spent.
func (w *RefreshWorker) reserve(ctx context.Context) error {
	for {
		w.mu.Lock()

		now := w.now()
		if !now.Before(w.resetAt) {
			w.used = 0
			w.resetAt = now.Add(w.window)
		}

		if w.used < w.limit {
			w.used++
			logger.Debug(ctx, "reserved whois query slot",
				zap.Int("used", w.used),
				zap.Int("limit", w.limit),
				zap.Time("resetAt", w.resetAt))
			w.mu.Unlock()

			return nil
		}

		wait := w.resetAt.Sub(now)
		w.mu.Unlock()

		logger.Debug(ctx, "waiting for whois query slot", zap.Duration("wait", wait))

		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for whois query slot: %w", ctx.Err())
		case <-time.After(wait):
		}
	}
}

// exhaust spends the rest of the window and returns the time until it resets.
func (w *RefreshWorker) exhaust() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.used = w.limit

	return max(w.resetAt.Sub(w.now()), 0)
}

// PruneWorker drops registration cache entries past their retention.
type PruneWorker struct {
	river.WorkerDefaults[cached.PruneArgs]

	refresher Refresher
	retention time.Duration
}

// NewPruneWorker creates a PruneWorker.
func NewPruneWorker(refresher Refresher, retention time.Duration) *PruneWorker {
	return &PruneWorker{refresher: refresher, retention: retention}
}

// Work prunes the cache once.
func (w *PruneWorker) Work(ctx context.Context, job *river.Job[cached.PruneArgs]) error {
	n, err := w.refresher.Prune(ctx, w.retention)
	if err != nil {
		logger.Error(ctx, "error pruning registration cache", zap.Int64("jobID", job.ID), zap.Error(err))

		return fmt.Errorf("could not prune registration cache: %w", err)
	}

	logger.Info(ctx, "registration cache pruned", zap.Int64("removed", n))

	return nil
}
