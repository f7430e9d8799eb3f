package postgres

import (
	"encoding/json"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/storage"
	"time"
)

// PgRegistration is a row of the domain_registrations table.
type PgRegistration struct {
	Domain    string    `db:"domain"`
	Found     bool      `db:"found"`
	Dates     []byte    `db:"dates"`
	FetchedAt time.Time `db:"fetched_at"`
}

// pgDates is the JSON document stored in the dates column. Registries may
// report several candidate dates, so both sides are lists.
type pgDates struct {
	Created []time.Time `json:"created"`
	Expires []time.Time `json:"expires"`
}

func (p *PgRegistration) ToStorage() (*storage.CachedRegistration, error) {
	out := &storage.CachedRegistration{
		Domain:    p.Domain,
		FetchedAt: p.FetchedAt,
	}
	if !p.Found {
		return out, nil
	}

	var dates pgDates
	if len(p.Dates) > 0 {
		if err := json.Unmarshal(p.Dates, &dates); err != nil {
			return nil, fmt.Errorf("could not unmarshal registration dates: %w", err)
		}
	}

	out.Registration = &domain.Registration{
		Domain:    p.Domain,
		CreatedAt: dates.Created,
		ExpiresAt: dates.Expires,
	}

	return out, nil
}

func (p *PgRegistration) FromStorage(reg storage.CachedRegistration) error {
	var dates pgDates
	if reg.Registration != nil {
		dates.Created = reg.Registration.CreatedAt
		dates.Expires = reg.Registration.ExpiresAt
	}

	raw, err := json.Marshal(dates)
	if err != nil {
		return fmt.Errorf("could not marshal registration dates: %w", err)
	}

	*p = PgRegistration{
		Domain:    reg.Domain,
		Found:     reg.Registration != nil,
		Dates:     raw,
		FetchedAt: reg.FetchedAt.UTC(),
	}

	return nil
}
