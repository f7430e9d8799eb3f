// Package memory implements storage.Storage in process memory. Entries
// expire after a retention period and the oldest entry is evicted when the
// store is full.
package memory

import (
	"context"
	"phishguard/pkg/storage"
	"sync"
	"time"
)

const (
	// DefaultMaxEntries caps the store when no size is configured.
	DefaultMaxEntries = 10_000
	// DefaultRetention is how long an entry is kept when no retention is configured.
	DefaultRetention = 7 * 24 * time.Hour
)

// Options configures a Store.
type Options struct {
	MaxEntries int
	Retention  time.Duration
	// Now overrides the clock, mostly for tests.
	Now func() time.Time
}

type entry struct {
	reg       storage.CachedRegistration
	expiresAt time.Time
}

// Store is a bounded, expiring registration cache.
type Store struct {
	mu         sync.RWMutex
	items      map[string]entry
	maxEntries int
	retention  time.Duration
	now        func() time.Time
}

var _ storage.Storage = (*Store)(nil)

// New creates an empty Store.
func New(opts Options) *Store {
	s := &Store{
		items:      make(map[string]entry),
		maxEntries: opts.MaxEntries,
		retention:  opts.Retention,
		now:        opts.Now,
	}
	if s.maxEntries <= 0 {
		s.maxEntries = DefaultMaxEntries
	}
	if s.retention <= 0 {
		s.retention = DefaultRetention
	}
	if s.now == nil {
		s.now = time.Now
	}

	return s
}

// Registration implements storage.RegistrationStorage.
func (s *Store) Registration(_ context.Context, domain string) (*storage.CachedRegistration, error) {
	s.mu.RLock()
	e, ok := s.items[domain]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	now := s.now()
	if now.After(e.expiresAt) {
		s.mu.Lock()
		defer s.mu.Unlock()

		// a writer may have refreshed the entry since the read lock was released
		e, ok = s.items[domain]
		if !ok {
			return nil, nil
		}
		if now.After(e.expiresAt) {
			delete(s.items, domain)

			return nil, nil
		}
	}

	reg := e.reg

	return &reg, nil
}

// StoreRegistration implements storage.RegistrationStorage.
func (s *Store) StoreRegistration(_ context.Context, reg storage.CachedRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[reg.Domain]; !exists && len(s.items) >= s.maxEntries {
		s.evictOldest()
	}

	s.items[reg.Domain] = entry{
		reg:       reg,
		expiresAt: reg.FetchedAt.Add(s.retention),
	}

	return nil
}

// PruneRegistrations implements storage.RegistrationStorage.
func (s *Store) PruneRegistrations(_ context.Context, olderThan time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for key, e := range s.items {
		if e.reg.FetchedAt.Before(olderThan) {
			delete(s.items, key)
			removed++
		}
	}

	return removed, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Close drops every entry.
func (s *Store) Close() error {
	s.mu.Lock()
	s.items = make(map[string]entry)
	s.mu.Unlock()

	return nil
}

func (s *Store) evictOldest() {
	var oldestKey string
	var oldest time.Time
	first := true

	for key, e := range s.items {
		if first || e.expiresAt.Before(oldest) {
			oldestKey = key
			oldest = e.expiresAt
			first = false
		}
	}

	if !first {
		delete(s.items, oldestKey)
	}
}
