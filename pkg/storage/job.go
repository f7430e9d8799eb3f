package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Backends without a job queue do not
// implement it; callers fall back to doing the work inline.
//
//go:generate mockgen -package mockstorage -source=job.go -destination=mock/mockjob.go *
type JobStorage interface {
	// AddJob enqueues a new job and reports false when a unique job with the
	// same arguments was already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
