// Package storage defines the persistence contracts for cached registration
// lookups. Backends live in sub packages (postgres, redis, memory) so the
// registration cache can run with or without external infrastructure.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"phishguard/pkg/domain"
	"time"
)

// CachedRegistration is a registry answer remembered for a domain.
type CachedRegistration struct {
	// Domain is the key the answer was stored under.
	Domain string
	// Registration is nil when the registry held no record for the domain.
	Registration *domain.Registration
	// FetchedAt is when the registry was asked.
	FetchedAt time.Time
}

// Age returns how long ago the answer was fetched.
func (c *CachedRegistration) Age(now time.Time) time.Duration {
	return now.Sub(c.FetchedAt)
}

// RegistrationStorage persists registry answers keyed by domain.
type RegistrationStorage interface {
	// Registration returns the cached answer for domain, or nil when nothing
	// is cached.
	Registration(ctx context.Context, domain string) (*CachedRegistration, error)
	// StoreRegistration inserts or replaces the cached answer for reg.Domain.
	StoreRegistration(ctx context.Context, reg CachedRegistration) error
	// PruneRegistrations removes answers fetched before olderThan and reports
	// how many were removed.
	PruneRegistrations(ctx context.Context, olderThan time.Time) (int64, error)
}

// Storage is a RegistrationStorage owning resources that must be released.
type Storage interface {
	RegistrationStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error
}
