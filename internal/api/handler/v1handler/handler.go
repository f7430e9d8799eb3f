// Package v1handler implements the generated v1 API: URL assessment, the
// readiness check, bearer authentication and the JSON error bodies.
package v1handler

import (
	"context"
	"net/http"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/internal/assessor"
)

// DefaultMaxBodyBytes limits request bodies when no limit is configured.
const DefaultMaxBodyBytes = 64 << 10

type Deps struct {
	Assessor assessor.Assessor
}

type Options struct {
	// RequireAuth rejects assessments without an authenticated subject,
	// except on routes served through Alias.
	RequireAuth bool
}

type Handler struct {
	deps Deps
	opts Options
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps, opts Options) *Handler {
	return &Handler{deps: deps, opts: opts}
}

type publicKey struct{}

func withPublicAccess(ctx context.Context) context.Context {
	return context.WithValue(ctx, publicKey{}, true)
}

func isPublic(ctx context.Context) bool {
	v, _ := ctx.Value(publicKey{}).(bool)

	return v
}

// Alias serves a legacy route through the generated router by rewriting the
// request path, e.g. POST /predict to POST /v1/assess. Aliased requests need
// no bearer token.
func Alias(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(withPublicAccess(r.Context()))
		r2.URL.Path = path
		r2.URL.RawPath = ""
		next.ServeHTTP(w, r2)
	})
}
