package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"phishguard/pkg/model"
	"phishguard/pkg/model/linear"
	"phishguard/pkg/model/remote"
	"phishguard/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, layout string, attribute any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /metadata", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":               "remote-test",
			"features":           []string{"a", "b"},
			"attribution_layout": layout,
		})
	})
	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Features []float64 `json:"features"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []float64{0.5, -1}, req.Features)
		_, _ = w.Write([]byte(`{"class": 1, "probabilities": [0.25, 0.75]}`))
	})
	mux.HandleFunc("POST /attribute", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"values": attribute})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestClientLayouts(t *testing.T) {
	tests := []struct {
		name      string
		layout    string
		attribute any
		want      []float64
	}{
		{name: "single", layout: "single", attribute: []float64{0.3, -0.1}, want: []float64{0.3, -0.1}},
		{
			name:      "per class uses the phishing array",
			layout:    "per_class",
			attribute: [][]float64{{-0.3, 0.1}, {0.3, -0.1}},
			want:      []float64{0.3, -0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newService(t, tt.layout, tt.attribute)

			c, err := remote.New(context.Background(), remote.Options{Endpoint: srv.URL + "/", APIKey: "secret"})
			require.NoError(t, err)
			require.Equal(t, []string{"a", "b"}, c.Metadata().Features)

			pred, err := c.Predict(context.Background(), []float64{0.5, -1})
			require.NoError(t, err)
			require.Equal(t, model.Prediction{Class: 1, Probabilities: [2]float64{0.25, 0.75}}, pred)

			got, err := c.Attribute(context.Background(), []float64{0.5, -1})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClientRejectsShapeMismatch(t *testing.T) {
	// per_class service answering with a single array
	srv := newService(t, "per_class", []float64{0.3, -0.1})

	c, err := remote.New(context.Background(), remote.Options{Endpoint: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	_, err = c.Attribute(context.Background(), []float64{0.5, -1})
	require.Error(t, err)

	_, err = c.Attribute(context.Background(), []float64{0.5, -1, 3})
	require.Error(t, err)
}

func TestNewRejectsUnknownLayout(t *testing.T) {
	srv := newService(t, "tree", nil)

	_, err := remote.New(context.Background(), remote.Options{Endpoint: srv.URL, APIKey: "secret"})
	require.ErrorContains(t, err, "unsupported attribution layout")
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := remote.New(context.Background(), remote.Options{})
	require.Error(t, err)
}

func TestUnavailableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("warming up"))
	}))
	t.Cleanup(srv.Close)

	_, err := remote.New(context.Background(), remote.Options{Endpoint: srv.URL})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBundleWithLocalScaler(t *testing.T) {
	srv := newService(t, "single", []float64{0.3, -0.1})
	c, err := remote.New(context.Background(), remote.Options{Endpoint: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	b := c.Bundle(&linear.StandardScaler{Mean: []float64{0, 1}, Scale: []float64{2, 1}})
	require.True(t, b.Ready())
	require.Equal(t, "remote-test", b.Name)

	pred, attr, err := b.Score(context.Background(), []float64{1, 0})
	require.NoError(t, err)
	require.InDelta(t, 0.75, pred.Phishing(), 0)
	require.Equal(t, []float64{0.3, -0.1}, attr)
}
