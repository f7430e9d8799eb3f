package memory_test

import (
	"context"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"phishguard/pkg/storage/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func cached(name string, fetchedAt time.Time) storage.CachedRegistration {
	return storage.CachedRegistration{
		Domain: name,
		Registration: &domain.Registration{
			Domain:    name,
			CreatedAt: []time.Time{time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		FetchedAt: fetchedAt,
	}
}

func TestStore_StoreAndGet(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := memory.New(memory.Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	got, err := s.Registration(ctx, "example.com")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.StoreRegistration(ctx, cached("example.com", now)))

	got, err = s.Registration(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "example.com", got.Domain)
	created, ok := got.Registration.Created()
	require.True(t, ok)
	require.Equal(t, 2001, created.Year())
}

func TestStore_NoRecordIsCached(t *testing.T) {
	now := time.Now()
	s := memory.New(memory.Options{})
	ctx := context.Background()

	require.NoError(t, s.StoreRegistration(ctx, storage.CachedRegistration{Domain: "nxdomain.test", FetchedAt: now}))

	got, err := s.Registration(ctx, "nxdomain.test")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.Registration)
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := memory.New(memory.Options{
		Retention: time.Hour,
		Now:       func() time.Time { return now },
	})
	ctx := context.Background()

	require.NoError(t, s.StoreRegistration(ctx, cached("example.com", now.Add(-2*time.Hour))))

	got, err := s.Registration(ctx, "example.com")
	require.NoError(t, err)
	require.Nil(t, got)
	require.Equal(t, 0, s.Len())
}

func TestStore_ExpiryKeepsConcurrentRefresh(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	var s *memory.Store
	refreshed := false
	s = memory.New(memory.Options{
		Retention: time.Hour,
		Now: func() time.Time {
			// lands between the expiry check and the delete
			if !refreshed {
				refreshed = true
				require.NoError(t, s.StoreRegistration(ctx, cached("example.com", now)))
			}

			return now
		},
	})

	require.NoError(t, s.StoreRegistration(ctx, cached("example.com", now.Add(-2*time.Hour))))

	got, err := s.Registration(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.FetchedAt.Equal(now))
	require.Equal(t, 1, s.Len())

	got, err = s.Registration(ctx, "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestStore_EvictsOldestWhenFull(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := memory.New(memory.Options{MaxEntries: 2, Now: func() time.Time { return now }})
	ctx := context.Background()

	require.NoError(t, s.StoreRegistration(ctx, cached("a.com", now.Add(-3*time.Minute))))
	require.NoError(t, s.StoreRegistration(ctx, cached("b.com", now.Add(-2*time.Minute))))
	require.NoError(t, s.StoreRegistration(ctx, cached("c.com", now.Add(-time.Minute))))
	require.Equal(t, 2, s.Len())

	got, err := s.Registration(ctx, "a.com")
	require.NoError(t, err)
	require.Nil(t, got)

	// replacing an existing key never evicts
	require.NoError(t, s.StoreRegistration(ctx, cached("c.com", now)))
	require.Equal(t, 2, s.Len())
}

func TestStore_Prune(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	s := memory.New(memory.Options{Now: func() time.Time { return now }})
	ctx := context.Background()

	require.NoError(t, s.StoreRegistration(ctx, cached("old.com", now.Add(-48*time.Hour))))
	require.NoError(t, s.StoreRegistration(ctx, cached("new.com", now)))

	removed, err := s.PruneRegistrations(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.Close())
	require.Equal(t, 0, s.Len())
}
