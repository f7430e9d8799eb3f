package domain

import "time"

// Registration is the registry metadata known for a domain. A registry may
// report several candidate dates for the same event; the first one wins.
type Registration struct {
	// Domain is the registrable domain the record was fetched for.
	Domain string `json:"domain"`
	// CreatedAt holds the candidate creation dates in registry order.
	CreatedAt []time.Time `json:"createdAt,omitempty"`
	// ExpiresAt holds the candidate expiration dates in registry order.
	ExpiresAt []time.Time `json:"expiresAt,omitempty"`
}

// Created returns the first creation date, if any.
func (r *Registration) Created() (time.Time, bool) {
	if r == nil || len(r.CreatedAt) == 0 || r.CreatedAt[0].IsZero() {
		return time.Time{}, false
	}

	return r.CreatedAt[0], true
}

// Expires returns the first expiration date, if any.
func (r *Registration) Expires() (time.Time, bool) {
	if r == nil || len(r.ExpiresAt) == 0 || r.ExpiresAt[0].IsZero() {
		return time.Time{}, false
	}

	return r.ExpiresAt[0], true
}
