package worker_test

import (
	"context"
	"errors"
	"phishguard/internal/worker"
	"phishguard/pkg/logger"
	"phishguard/pkg/registry/cached"
	"phishguard/pkg/serrors"
	"sync"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type fakeRefresher struct {
	mu        sync.Mutex
	refreshed []string
	err       error
	pruned    int64
	retention time.Duration
}

func (f *fakeRefresher) Refresh(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshed = append(f.refreshed, key)

	return f.err
}

func (f *fakeRefresher) Prune(_ context.Context, retention time.Duration) (int64, error) {
	f.retention = retention

	return f.pruned, f.err
}

func makeJob(id int64, d string) *river.Job[cached.RefreshArgs] {
	return &river.Job[cached.RefreshArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   cached.NewRefreshArgs(d),
	}
}

func TestRefreshWorker_Work_Success(t *testing.T) {
	r := &fakeRefresher{}
	w := worker.NewRefreshWorker(r, 10, time.Second)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "example.com")))
	require.Equal(t, []string{"example.com"}, r.refreshed)
	require.Equal(t, time.Second, w.Timeout(makeJob(1, "example.com")))
}

func TestRefreshWorker_Work_Error(t *testing.T) {
	r := &fakeRefresher{err: errors.New("connection refused")}
	w := worker.NewRefreshWorker(r, 10, time.Second)

	err := w.Work(context.Background(), makeJob(2, "example.com"))
	require.Error(t, err)

	var snooze *river.JobSnoozeError
	require.False(t, errors.As(err, &snooze))
}

func TestRefreshWorker_Work_RateLimitedSnoozes(t *testing.T) {
	r := &fakeRefresher{err: serrors.With(serrors.ErrRateLimited, "slow down")}
	w := worker.NewRefreshWorker(r, 10, time.Second)

	err := w.Work(context.Background(), makeJob(3, "example.com"))
	require.Error(t, err)

	var snooze *river.JobSnoozeError
	require.ErrorAs(t, err, &snooze)
	require.LessOrEqual(t, snooze.Duration, time.Minute)

	// the window is spent, so the next job has to wait for the reset
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	r.err = nil
	require.Error(t, w.Work(ctx, makeJob(4, "example.org")))
}

func TestRefreshWorker_PacingBlocksUntilReset(t *testing.T) {
	r := &fakeRefresher{}
	w := worker.NewRefreshWorker(r, 2, time.Second)

	var mu sync.Mutex
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w.SetClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		return now
	})

	require.NoError(t, w.Work(context.Background(), makeJob(1, "a.com")))
	require.NoError(t, w.Work(context.Background(), makeJob(2, "b.com")))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.Error(t, w.Work(ctx, makeJob(3, "c.com")))

	mu.Lock()
	now = now.Add(time.Minute)
	mu.Unlock()

	require.NoError(t, w.Work(context.Background(), makeJob(4, "d.com")))
	require.Equal(t, []string{"a.com", "b.com", "d.com"}, r.refreshed)
}

func TestPruneWorker_Work(t *testing.T) {
	r := &fakeRefresher{pruned: 3}
	w := worker.NewPruneWorker(r, 48*time.Hour)

	job := &river.Job[cached.PruneArgs]{JobRow: &rivertype.JobRow{ID: 9}}
	require.NoError(t, w.Work(context.Background(), job))
	require.Equal(t, 48*time.Hour, r.retention)

	r.err = errors.New("db down")
	require.Error(t, w.Work(context.Background(), job))
}
