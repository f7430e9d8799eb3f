package features

import (
	"context"
	"errors"
	"fmt"
	"math"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"regexp"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultLookupTimeout bounds a single registration lookup.
	DefaultLookupTimeout = 5 * time.Second

	// FallbackLifespanDays is used when the lifespan cannot be determined.
	FallbackLifespanDays = 365
)

var ipv4Literal = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`) //nolint: gochecknoglobals

// IsIPv4Literal reports whether host is a dotted-quad IPv4 address.
func IsIPv4Literal(host string) bool {
	return ipv4Literal.MatchString(host)
}

// RegistrationLookup fetches registry metadata for a domain. A nil record
// with a nil error means the registry has no record for it.
type RegistrationLookup interface {
	Lookup(ctx context.Context, domain string) (*domain.Registration, error)
}

// LookupStatus tells how the domain signals were obtained.
type LookupStatus string

const (
	// LookupSkipped means no lookup was attempted (IP literal or empty domain).
	LookupSkipped LookupStatus = "skipped"
	// LookupOK means the registry answered with a record.
	LookupOK LookupStatus = "ok"
	// LookupNotFound means the registry answered without a record.
	LookupNotFound LookupStatus = "not_found"
	// LookupDegraded means the lookup failed and defaults were substituted.
	LookupDegraded LookupStatus = "degraded"
)

// DomainInfo carries the registration-derived signals. Both values are
// never negative.
type DomainInfo struct {
	AgeDays      int
	LifespanDays int
	Status       LookupStatus
	// Err is the absorbed lookup failure when Status is LookupDegraded.
	Err error
}

// Degraded reports whether defaults were substituted for a failed lookup.
func (d DomainInfo) Degraded() bool { return d.Status == LookupDegraded }

// Resolver derives DomainInfo through a RegistrationLookup. Lookup failures
// are absorbed and reported through DomainInfo.Status.
type Resolver struct {
	lookup  RegistrationLookup
	timeout time.Duration
	now     func() time.Time
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLookupTimeout overrides DefaultLookupTimeout.
func WithLookupTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *Resolver) { r.now = now }
}

// NewResolver creates a resolver backed by lookup. A nil lookup resolves
// every domain as degraded.
func NewResolver(lookup RegistrationLookup, opts ...ResolverOption) *Resolver {
	r := &Resolver{lookup: lookup, timeout: DefaultLookupTimeout, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the domain signals for the parsed URL.
func (r *Resolver) Resolve(ctx context.Context, p ParsedURL) DomainInfo {
	if p.Hostname == "" || IsIPv4Literal(p.Hostname) {
		return DomainInfo{Status: LookupSkipped}
	}

	reg, err := r.lookupBounded(ctx, p.Hostname)
	if err != nil {
		logger.Warn(ctx, "registration lookup degraded", zap.String("domain", p.Hostname), zap.Error(err))

		return DomainInfo{LifespanDays: FallbackLifespanDays, Status: LookupDegraded, Err: err}
	}

	info := DomainInfo{Status: LookupOK}
	if reg == nil {
		info.Status = LookupNotFound
	}

	created, hasCreated := reg.Created()
	expires, hasExpires := reg.Expires()
	if hasCreated {
		info.AgeDays = wholeDays(r.now().Sub(created))
	}
	if hasCreated && hasExpires {
		info.LifespanDays = wholeDays(expires.Sub(created))
	} else {
		info.LifespanDays = FallbackLifespanDays
	}

	return info
}

type lookupResult struct {
	reg *domain.Registration
	err error
}

// lookupBounded runs the lookup in its own goroutine so a collaborator that
// ignores ctx still cannot hold the request past the timeout.
func (r *Resolver) lookupBounded(ctx context.Context, host string) (*domain.Registration, error) {
	if r.lookup == nil {
		return nil, errors.New("no registration lookup configured")
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan lookupResult, 1)
	go func() {
		defer func() {
			if rv := recover(); rv != nil {
				done <- lookupResult{err: fmt.Errorf("registration lookup panicked: %v", rv)}
			}
		}()
		reg, err := r.lookup.Lookup(ctx, host)
		done <- lookupResult{reg: reg, err: err}
	}()

	select {
	case res := <-done:
		return res.reg, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("registration lookup: %w", ctx.Err())
	}
}

// wholeDays floors d to whole days, clamped at zero.
func wholeDays(d time.Duration) int {
	days := math.Floor(d.Hours() / 24)

	return int(max(0, days))
}
