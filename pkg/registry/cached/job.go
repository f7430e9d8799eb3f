package cached

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DefaultRefreshPeriod is the window in which a second refresh of the same
// domain is treated as a duplicate.
const DefaultRefreshPeriod = time.Hour

// RefreshArgs asks a worker to refetch the registration of Domain and
// replace the cached answer.
type RefreshArgs struct {
	// Domain is the cache key, unique so only one refresh per domain is queued.
	Domain string `json:"domain" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// NewRefreshArgs builds the job arguments for domain.
func NewRefreshArgs(domain string) RefreshArgs {
	return RefreshArgs{
		Domain:       domain,
		maxAttempts:  3,
		uniquePeriod: DefaultRefreshPeriod,
	}
}

// Kind returns the River job kind the refresh worker is registered under.
func (args RefreshArgs) Kind() string { return "RefreshRegistrationJob" }

// InsertOpts keeps at most one pending refresh per domain and period.
func (args RefreshArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// PruneArgs asks a worker to drop cached answers older than the retention.
type PruneArgs struct{}

// Kind returns the River job kind of the prune job.
func (PruneArgs) Kind() string { return "PruneRegistrationsJob" }
