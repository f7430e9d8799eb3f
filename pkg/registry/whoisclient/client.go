// Package whoisclient implements registry.Registry over the WHOIS protocol.
package whoisclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"phishguard/pkg/domain"
	"phishguard/pkg/registry"
	"phishguard/pkg/serrors"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// DefaultTimeout bounds the WHOIS connection when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// notFoundMarkers are registry answers for unregistered names that the parser
// does not always recognize.
var notFoundMarkers = []string{ //nolint: gochecknoglobals
	"no match for",
	"not found",
	"no data found",
	"no entries found",
	"status: free",
	"status: available",
}

// dateLayouts are tried when the parser could not normalize a date itself.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
	"2006/01/02",
}

// Options configures a Client.
type Options struct {
	// Timeout bounds the WHOIS connection.
	Timeout time.Duration
	// Server forces a WHOIS server instead of the IANA referral chain.
	Server string
}

// Client queries WHOIS servers for the registrable part of a host.
type Client struct {
	whois  *whois.Client
	server string
}

var _ registry.Registry = (*Client)(nil)

// New creates a Client.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		whois:  whois.NewClient().SetTimeout(timeout),
		server: opts.Server,
	}
}

// RegistrableDomain returns the eTLD+1 of host in its ASCII form, e.g.
// "login.secure.example.co.uk" -> "example.co.uk".
func RegistrableDomain(host string) (string, error) {
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "" {
		return "", errors.New("empty host")
	}
	if net.ParseIP(host) != nil {
		return "", fmt.Errorf("%s is an IP address", host)
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("could not convert %q to ascii: %w", host, err)
	}

	etld1, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("could not find registrable domain of %q: %w", ascii, err)
	}

	return etld1, nil
}

// Lookup implements registry.Registry. Unknown domains yield a nil record.
func (c *Client) Lookup(ctx context.Context, host string) (*domain.Registration, error) {
	name, err := RegistrableDomain(host)
	if err != nil {
		return nil, err
	}

	raw, err := c.query(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("whois query for %s failed: %w", name, err)
	}

	return Parse(name, raw)
}

// query runs the blocking WHOIS exchange and gives up when ctx is done.
func (c *Client) query(ctx context.Context, name string) (string, error) {
	type result struct {
		raw string
		err error
	}

	done := make(chan result, 1)
	go func() {
		var servers []string
		if c.server != "" {
			servers = append(servers, c.server)
		}
		raw, err := c.whois.Whois(name, servers...)
		done <- result{raw: raw, err: err}
	}()

	select {
	case res := <-done:
		return res.raw, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Parse extracts the registration dates from a raw WHOIS answer.
func Parse(name, raw string) (*domain.Registration, error) {
	info, err := whoisparser.Parse(raw)
	if errors.Is(err, whoisparser.ErrNotFoundDomain) {
		return nil, nil
	}
	if errors.Is(err, whoisparser.ErrDomainLimitExceed) {
		return nil, serrors.Wrap(serrors.ErrRateLimited, err, "whois query limit reached for %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse whois answer for %s: %w", name, err)
	}
	if info.Domain == nil {
		return nil, nil
	}

	reg := &domain.Registration{Domain: name}
	if t, ok := parseDate(info.Domain.CreatedDateInTime, info.Domain.CreatedDate); ok {
		reg.CreatedAt = append(reg.CreatedAt, t)
	}
	if t, ok := parseDate(info.Domain.ExpirationDateInTime, info.Domain.ExpirationDate); ok {
		reg.ExpiresAt = append(reg.ExpiresAt, t)
	}

	// some registries answer a miss with free text the parser still accepts
	undated := len(reg.CreatedAt) == 0 && len(reg.ExpiresAt) == 0
	if undated && (strings.TrimSpace(info.Domain.Domain) == "" || notFound(raw)) {
		return nil, nil
	}

	return reg, nil
}

func notFound(raw string) bool {
	lower := strings.ToLower(raw)
	for _, m := range notFoundMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}

	return false
}

func parseDate(parsed *time.Time, raw string) (time.Time, bool) {
	if parsed != nil && !parsed.IsZero() {
		return parsed.UTC(), true
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
