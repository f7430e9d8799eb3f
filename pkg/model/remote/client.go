// Package remote provides model.Classifier and model.Attributor backed by an
// HTTP inference service.
//
// The service exposes:
//
//	GET  /metadata   -> {"name": "...", "features": [...], "attribution_layout": "per_class"|"single"}
//	POST /predict    {"features": [...]} -> {"class": 1, "probabilities": [p_legit, p_phish]}
//	POST /attribute  {"features": [...]} -> {"values": [...]} or {"values": [[...legit...], [...phish...]]}
//
// The attribution layout is read once by New and fixes how every later
// /attribute response is decoded. Inputs are already scaled.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"phishguard/pkg/model"
	"phishguard/pkg/serrors"
	"strings"
	"time"
)

// Layout is the shape of /attribute responses.
type Layout string

const (
	// LayoutPerClass means one attribution array per class; the phishing
	// class array is used.
	LayoutPerClass Layout = "per_class"
	// LayoutSingle means one array already oriented towards the phishing class.
	LayoutSingle Layout = "single"
)

// Metadata describes the artifacts served by the inference service.
type Metadata struct {
	Name              string   `json:"name"`
	Features          []string `json:"features"`
	AttributionLayout Layout   `json:"attribution_layout"`
}

// Options configures a Client.
type Options struct {
	// Endpoint is the base URL of the service, e.g. "http://ml:9000".
	Endpoint string
	// APIKey is sent as a bearer token when set.
	APIKey string
	// Timeout bounds every call. Defaults to 5s.
	Timeout time.Duration
	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// Client talks to the inference service. It is safe for concurrent use.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	metadata   Metadata
	decode     func(json.RawMessage) ([]float64, error)
}

var (
	_ model.Classifier = (*Client)(nil)
	_ model.Attributor = (*Client)(nil)
)

// New fetches the service metadata and returns a client bound to its
// attribution layout.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("remote model endpoint is not configured")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		apiKey:     opts.APIKey,
		httpClient: httpClient,
	}

	if err := c.do(ctx, http.MethodGet, "/metadata", nil, &c.metadata); err != nil {
		return nil, fmt.Errorf("could not fetch model metadata: %w", err)
	}
	switch c.metadata.AttributionLayout {
	case LayoutPerClass:
		c.decode = decodePerClass
	case LayoutSingle:
		c.decode = decodeSingle
	default:
		return nil, fmt.Errorf("unsupported attribution layout %q", c.metadata.AttributionLayout)
	}
	if len(c.metadata.Features) == 0 {
		return nil, fmt.Errorf("model metadata declares no features")
	}

	return c, nil
}

// Metadata returns the metadata fetched by New.
func (c *Client) Metadata() Metadata { return c.metadata }

// Bundle combines the client with a local scaler.
func (c *Client) Bundle(scaler model.Scaler) *model.Bundle {
	return &model.Bundle{
		Name:       c.metadata.Name,
		Features:   append([]string(nil), c.metadata.Features...),
		Scaler:     scaler,
		Classifier: c,
		Attributor: c,
	}
}

// Predict implements model.Classifier.
func (c *Client) Predict(ctx context.Context, scaled []float64) (model.Prediction, error) {
	var res struct {
		Class         int       `json:"class"`
		Probabilities []float64 `json:"probabilities"`
	}
	if err := c.do(ctx, http.MethodPost, "/predict", featuresReq{Features: scaled}, &res); err != nil {
		return model.Prediction{}, err
	}
	if len(res.Probabilities) != 2 {
		return model.Prediction{}, fmt.Errorf("expected 2 probabilities, got %d", len(res.Probabilities))
	}

	return model.Prediction{
		Class:         res.Class,
		Probabilities: [2]float64{res.Probabilities[0], res.Probabilities[1]},
	}, nil
}

// Attribute implements model.Attributor.
func (c *Client) Attribute(ctx context.Context, scaled []float64) ([]float64, error) {
	var res struct {
		Values json.RawMessage `json:"values"`
	}
	if err := c.do(ctx, http.MethodPost, "/attribute", featuresReq{Features: scaled}, &res); err != nil {
		return nil, err
	}

	values, err := c.decode(res.Values)
	if err != nil {
		return nil, fmt.Errorf("could not decode attributions: %w", err)
	}
	if len(values) != len(scaled) {
		return nil, fmt.Errorf("expected %d attributions, got %d", len(scaled), len(values))
	}

	return values, nil
}

type featuresReq struct {
	Features []float64 `json:"features"`
}

func decodeSingle(raw json.RawMessage) ([]float64, error) {
	var v []float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return v, nil
}

func decodePerClass(raw json.RawMessage) ([]float64, error) {
	var v [][]float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if len(v) != 2 {
		return nil, fmt.Errorf("expected 2 classes, got %d", len(v))
	}

	return v[model.ClassPhishing], nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, v any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return serrors.Wrap(serrors.ErrTimeout, err, "inference request %s", path)
		}

		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return serrors.With(serrors.ErrUnavailable, "inference service unavailable: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%s %s failed with %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}
