package cached_test

import (
	"context"
	"errors"
	"phishguard/pkg/domain"
	"phishguard/pkg/registry/cached"
	mockregistry "phishguard/pkg/registry/mock"
	"phishguard/pkg/storage"
	"phishguard/pkg/storage/memory"
	mockstorage "phishguard/pkg/storage/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

func clock() time.Time { return now }

func registration(name string) *domain.Registration {
	return &domain.Registration{
		Domain:    name,
		CreatedAt: []time.Time{time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestCache_MissStoresAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	live.EXPECT().Lookup(gomock.Any(), "example.com").Return(registration("example.com"), nil).Times(1)

	reg, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", reg.Domain)

	// second lookup is served from the cache
	reg, err = c.Lookup(context.Background(), "Example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", reg.Domain)
}

func TestCache_NoRecordIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	live.EXPECT().Lookup(gomock.Any(), "unregistered.test").Return(nil, nil).Times(1)

	for range 2 {
		reg, err := c.Lookup(context.Background(), "unregistered.test")
		require.NoError(t, err)
		require.Nil(t, reg)
	}
}

func TestCache_FailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	boom := errors.New("whois down")
	live.EXPECT().Lookup(gomock.Any(), "example.com").Return(nil, boom)

	_, err = c.Lookup(context.Background(), "example.com")
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, store.Len())
}

func TestCache_StaleEnqueuesRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	jobs := mockstorage.NewMockJobStorage(ctrl)
	store := memory.New(memory.Options{Now: clock})

	require.NoError(t, store.StoreRegistration(context.Background(), storage.CachedRegistration{
		Domain:       "example.com",
		Registration: registration("example.com"),
		FetchedAt:    now.Add(-48 * time.Hour),
	}))

	c, err := cached.New(live, store,
		cached.WithClock(clock),
		cached.WithTTL(24*time.Hour),
		cached.WithJobs(jobs))
	require.NoError(t, err)

	jobs.EXPECT().AddJob(gomock.Any(), cached.NewRefreshArgs("example.com"), gomock.Nil()).Return(true, nil)

	reg, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", reg.Domain)
}

func TestCache_StaleWithoutJobsLooksUpInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	require.NoError(t, store.StoreRegistration(context.Background(), storage.CachedRegistration{
		Domain:       "example.com",
		Registration: registration("example.com"),
		FetchedAt:    now.Add(-48 * time.Hour),
	}))

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	// first call refreshes, the registry then fails and the stale answer is kept
	live.EXPECT().Lookup(gomock.Any(), "example.com").Return(nil, errors.New("timeout"))

	reg, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, reg)
}

func TestCache_StorageErrorFallsBackToLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := mockstorage.NewMockRegistrationStorage(ctrl)

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	store.EXPECT().Registration(gomock.Any(), "example.com").Return(nil, errors.New("connection refused"))
	live.EXPECT().Lookup(gomock.Any(), "example.com").Return(registration("example.com"), nil)
	store.EXPECT().StoreRegistration(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	reg, err := c.Lookup(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, "example.com", reg.Domain)
}

func TestCache_KeyFunc(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	key := func(host string) (string, error) {
		if host == "10.0.0.1" {
			return "", errors.New("ip")
		}

		return "example.com", nil
	}
	c, err := cached.New(live, store, cached.WithClock(clock), cached.WithKeyFunc(key))
	require.NoError(t, err)

	live.EXPECT().Lookup(gomock.Any(), "login.example.com").Return(registration("example.com"), nil).Times(1)
	live.EXPECT().Lookup(gomock.Any(), "10.0.0.1").Return(nil, errors.New("ip")).Times(1)

	_, err = c.Lookup(context.Background(), "login.example.com")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "www.example.com")
	require.NoError(t, err)

	_, err = c.Lookup(context.Background(), "10.0.0.1")
	require.Error(t, err)
	require.Equal(t, 1, store.Len())
}

func TestCache_RefreshAndPrune(t *testing.T) {
	ctrl := gomock.NewController(t)
	live := mockregistry.NewMockRegistry(ctrl)
	store := memory.New(memory.Options{Now: clock})

	c, err := cached.New(live, store, cached.WithClock(clock))
	require.NoError(t, err)

	require.NoError(t, store.StoreRegistration(context.Background(), storage.CachedRegistration{
		Domain:    "old.com",
		FetchedAt: now.Add(-30 * 24 * time.Hour),
	}))

	live.EXPECT().Lookup(gomock.Any(), "example.com").Return(registration("example.com"), nil)
	require.NoError(t, c.Refresh(context.Background(), "example.com"))

	got, err := store.Registration(context.Background(), "example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, now, got.FetchedAt)

	removed, err := c.Prune(context.Background(), 7*24*time.Hour)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)
}

func TestRefreshArgs(t *testing.T) {
	args := cached.NewRefreshArgs("example.com")
	require.Equal(t, "RefreshRegistrationJob", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, 3, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, cached.DefaultRefreshPeriod, opts.UniqueOpts.ByPeriod)
}
