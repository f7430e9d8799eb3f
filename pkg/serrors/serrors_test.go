package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"phishguard/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrSchemaMismatch,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("model exploded")

	e1 := serrors.With(serrors.ErrBadRequest, "url %q is empty", "")
	require.Equal(t, `url "" is empty`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "prediction failed")
	require.Equal(t, "prediction failed: model exploded", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnavailable)
	require.Equal(t, "UNAVAILABLE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrSchemaMismatch, base, "self-test")

	require.ErrorIs(t, e, serrors.ErrSchemaMismatch)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "attribution")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInternal, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "No URL provided"), http.StatusBadRequest},
		{"unavailable", serrors.KindOnly(serrors.ErrUnavailable), http.StatusServiceUnavailable},
		{"wrapped by fmt", fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrUnauthorized)), http.StatusUnauthorized},
		{"sentinel directly", serrors.ErrNotFound, http.StatusNotFound},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"rate limited", serrors.KindOnly(serrors.ErrRateLimited), http.StatusTooManyRequests},
		{"schema mismatch", serrors.KindOnly(serrors.ErrSchemaMismatch), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
		})
	}
}
