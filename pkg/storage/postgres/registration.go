package postgres

import (
	"context"
	"fmt"
	"phishguard/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	registrationsTable = "domain_registrations"
)

// Registration implements storage.RegistrationStorage.
func (p *PgSQL) Registration(ctx context.Context, d string) (*storage.CachedRegistration, error) {
	var row PgRegistration
	found, err := p.Builder.From(registrationsTable).
		Where(goqu.I("domain").Eq(d)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get registration from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToStorage()
}

// StoreRegistration implements storage.RegistrationStorage. An existing row
// for the same domain is replaced.
func (p *PgSQL) StoreRegistration(ctx context.Context, reg storage.CachedRegistration) error {
	var row PgRegistration
	if err := row.FromStorage(reg); err != nil {
		return err
	}

	_, err := p.Builder.Insert(registrationsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain", goqu.Record{
			"found":      goqu.L("EXCLUDED.found"),
			"dates":      goqu.L("EXCLUDED.dates"),
			"fetched_at": goqu.L("EXCLUDED.fetched_at"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store registration into pg: %w", err)
	}

	return nil
}

// PruneRegistrations implements storage.RegistrationStorage.
func (p *PgSQL) PruneRegistrations(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := p.Builder.Delete(registrationsTable).
		Where(goqu.I("fetched_at").Lt(olderThan.UTC())).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune registrations in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count pruned registrations: %w", err)
	}

	return n, nil
}
