// Package registry defines the domain registration lookup collaborator.
// Implementations answer with the creation and expiration dates a registry
// knows for a domain.
package registry

import (
	"context"
	"phishguard/pkg/domain"
)

// Registry looks up registration metadata. A nil record with a nil error
// means the registry holds no record for the domain.
//
//go:generate mockgen -package mockregistry -source=registry.go -destination=mock/mockregistry.go *
type Registry interface {
	Lookup(ctx context.Context, domain string) (*domain.Registration, error)
}

// Func adapts a plain function to Registry.
type Func func(ctx context.Context, domain string) (*domain.Registration, error)

// Lookup implements Registry.
func (f Func) Lookup(ctx context.Context, d string) (*domain.Registration, error) {
	return f(ctx, d)
}

// Offline is a Registry that never finds a record. It is used for the
// startup self-test and when lookups are disabled.
var Offline Registry = Func(func(context.Context, string) (*domain.Registration, error) { //nolint: gochecknoglobals
	return nil, nil
})
