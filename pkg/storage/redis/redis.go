// Package redis implements storage.Storage on top of a Redis server. Entries
// carry a native TTL, so expired answers disappear without pruning.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"time"

	fiberredis "github.com/gofiber/storage/redis/v3"
)

const (
	// DefaultRetention is the key TTL when none is configured.
	DefaultRetention = 7 * 24 * time.Hour

	keyPrefix = "phishguard:registration:"
)

// Options configures the Redis connection.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	Database int
	// Retention is the TTL of every stored answer.
	Retention time.Duration
}

// Redis is a registration cache stored in Redis.
type Redis struct {
	client    *fiberredis.Storage
	retention time.Duration
}

var _ storage.Storage = (*Redis)(nil)

// record is the stored JSON shape of a cached answer.
type record struct {
	Found     bool        `json:"found"`
	Created   []time.Time `json:"created,omitempty"`
	Expires   []time.Time `json:"expires,omitempty"`
	FetchedAt time.Time   `json:"fetchedAt"`
}

// New connects to Redis.
func New(opts Options) *Redis {
	retention := opts.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	return &Redis{
		client: fiberredis.New(fiberredis.Config{
			Host:     opts.Host,
			Port:     opts.Port,
			Username: opts.Username,
			Password: opts.Password,
			Database: opts.Database,
		}),
		retention: retention,
	}
}

// Registration implements storage.RegistrationStorage.
func (r *Redis) Registration(ctx context.Context, d string) (*storage.CachedRegistration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	raw, err := r.client.Get(keyPrefix + d)
	if err != nil {
		return nil, fmt.Errorf("could not get registration from redis: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("could not unmarshal cached registration: %w", err)
	}

	out := &storage.CachedRegistration{Domain: d, FetchedAt: rec.FetchedAt}
	if rec.Found {
		out.Registration = &domain.Registration{
			Domain:    d,
			CreatedAt: rec.Created,
			ExpiresAt: rec.Expires,
		}
	}

	return out, nil
}

// StoreRegistration implements storage.RegistrationStorage.
func (r *Redis) StoreRegistration(ctx context.Context, reg storage.CachedRegistration) error {
	if err := ctx.Err(); err != nil {
		return err //nolint: wrapcheck
	}

	rec := record{FetchedAt: reg.FetchedAt.UTC()}
	if reg.Registration != nil {
		rec.Found = true
		rec.Created = reg.Registration.CreatedAt
		rec.Expires = reg.Registration.ExpiresAt
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("could not marshal cached registration: %w", err)
	}

	if err := r.client.Set(keyPrefix+reg.Domain, raw, r.retention); err != nil {
		return fmt.Errorf("could not store registration into redis: %w", err)
	}

	return nil
}

// PruneRegistrations is a no-op; Redis expires keys on its own.
func (r *Redis) PruneRegistrations(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// Delete removes the cached answer for d.
func (r *Redis) Delete(d string) error {
	if err := r.client.Delete(keyPrefix + d); err != nil {
		return fmt.Errorf("could not delete registration from redis: %w", err)
	}

	return nil
}

// Close closes the connection pool.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
