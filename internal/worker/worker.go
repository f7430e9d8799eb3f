// Package worker runs the River workers that keep the registration cache
// fresh: refresh jobs queued by the cache on stale hits and a periodic prune.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"phishguard/pkg/logger"
	"phishguard/pkg/registry/cached"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configures the workers.
type Options struct {
	MaxWorkers       int
	RefreshTimeout   time.Duration
	QueriesPerMinute int
	PruneInterval    time.Duration
	Retention        time.Duration
}

// Start registers the workers and starts processing jobs until ctx is done
// or the returned client is stopped.
func Start(ctx context.Context, dbPool *pgxpool.Pool, refresher Refresher, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRefreshWorker(refresher, opts.QueriesPerMinute, opts.RefreshTimeout))
	river.AddWorker(workers, NewPruneWorker(refresher, opts.Retention))

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	var periodic []*river.PeriodicJob
	if opts.PruneInterval > 0 {
		periodic = append(periodic, river.NewPeriodicJob(
			river.PeriodicInterval(opts.PruneInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return cached.PruneArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodic,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
