// Package cached decorates a registry.Registry with a persistent answer cache.
//
// Fresh answers are served from storage. Stale answers are served as well
// while a background refresh is queued; without a job queue the registry is
// asked again inline and the stale answer is only used when that fails.
// Failed lookups are never cached, while "no record" answers are.
package cached

import (
	"context"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/registry"
	"phishguard/pkg/storage"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DefaultTTL is how long a cached answer counts as fresh.
const DefaultTTL = 24 * time.Hour

// Result labels how a lookup was answered.
type Result string

const (
	ResultHit   Result = "hit"
	ResultStale Result = "stale"
	ResultMiss  Result = "miss"
)

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long answers stay fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithJobs enables background refresh of stale answers.
func WithJobs(jobs storage.JobStorage) Option {
	return func(c *Cache) { c.jobs = jobs }
}

// WithKeyFunc maps a looked up host to its cache key, e.g. the registrable
// domain. Hosts the function rejects bypass the cache.
func WithKeyFunc(key func(string) (string, error)) Option {
	return func(c *Cache) { c.key = key }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// Cache is a caching registry.Registry.
type Cache struct {
	live  registry.Registry
	store storage.RegistrationStorage
	jobs  storage.JobStorage
	ttl   time.Duration
	key   func(string) (string, error)
	now   func() time.Time

	lookups metric.Int64Counter
}

var _ registry.Registry = (*Cache)(nil)

// New wraps live with a cache kept in store.
func New(live registry.Registry, store storage.RegistrationStorage, opts ...Option) (*Cache, error) {
	c := &Cache{
		live:  live,
		store: store,
		ttl:   DefaultTTL,
		key:   defaultKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	lookups, err := otel.Meter(metrics.MeterName).Int64Counter(
		"phishguard_registration_cache_total",
		metric.WithDescription("Registration lookups answered by the cache, by result."),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create cache counter: %w", err)
	}
	c.lookups = lookups

	return c, nil
}

func defaultKey(host string) (string, error) {
	return strings.ToLower(strings.TrimSpace(host)), nil
}

// Lookup implements registry.Registry.
func (c *Cache) Lookup(ctx context.Context, host string) (*domain.Registration, error) {
	key, err := c.key(host)
	if err != nil {
		return c.live.Lookup(ctx, host) //nolint: wrapcheck
	}
	ctx = logger.WithFields(ctx, zap.String("cacheKey", key))

	cached, err := c.store.Registration(ctx, key)
	if err != nil {
		logger.Warn(ctx, "could not read registration cache", zap.Error(err))
		cached = nil
	}

	if cached != nil {
		if cached.Age(c.now()) < c.ttl {
			c.count(ctx, ResultHit)

			return cached.Registration, nil
		}

		if c.jobs != nil {
			c.count(ctx, ResultStale)
			if _, err := c.jobs.AddJob(ctx, NewRefreshArgs(key), nil); err != nil {
				logger.Warn(ctx, "could not enqueue registration refresh", zap.Error(err))
			}

			return cached.Registration, nil
		}
	}

	c.count(ctx, ResultMiss)
	reg, err := c.fetch(ctx, key, host)
	if err != nil {
		if cached != nil {
			logger.Debug(ctx, "serving stale registration after failed lookup", zap.Error(err))

			return cached.Registration, nil
		}

		return nil, err
	}

	return reg, nil
}

// Refresh asks the registry for key and replaces the cached answer.
func (c *Cache) Refresh(ctx context.Context, key string) error {
	_, err := c.fetch(ctx, key, key)

	return err
}

// Prune drops answers fetched more than retention ago.
func (c *Cache) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	n, err := c.store.PruneRegistrations(ctx, c.now().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("could not prune registration cache: %w", err)
	}

	return n, nil
}

func (c *Cache) fetch(ctx context.Context, key, host string) (*domain.Registration, error) {
	reg, err := c.live.Lookup(ctx, host)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if err := c.store.StoreRegistration(ctx, storage.CachedRegistration{
		Domain:       key,
		Registration: reg,
		FetchedAt:    c.now(),
	}); err != nil {
		logger.Warn(ctx, "could not store registration in cache", zap.Error(err))
	}

	return reg, nil
}

func (c *Cache) count(ctx context.Context, result Result) {
	c.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", string(result))))
}
