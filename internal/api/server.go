// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the URL risk service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"phishguard/internal/api/handler/v1handler"
	"phishguard/internal/api/specs/v1specs"
	"phishguard/internal/config"
	"phishguard/pkg/controller"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication of /v1/assess.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the context of every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes limits assessment request bodies.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins lists allowed origins; empty allows any.
	CORSOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// Gatherer backs the metrics endpoint; nil selects the default registry.
	Gatherer prometheus.Gatherer
	// MeterProvider records the v1 operation metrics; nil selects the global provider.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, the legacy /predict route and the /health check
// - pprof endpoints for profiling
// It also wraps the mux with recovery, request timeout, CORS and logging middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	if opts.MetricsPath != "" {
		gatherer := deps.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"PhishGuard URL Risk Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	handler := v1handler.New(deps.Deps, v1handler.Options{RequireAuth: secHandler.Enabled()})
	v1Server, err := v1specs.NewServer(
		handler,
		secHandler,
		v1specs.WithMeterProvider(deps.MeterProvider),
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithErrorHandler(handler.HandleError),
		v1specs.WithNotFound(v1handler.NotFound),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 server: %w", err)
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = v1handler.DefaultMaxBodyBytes
	}
	v1 := controller.WithBodyLimit(maxBody)(v1Server)
	mux.Handle("/v1/", v1)
	// legacy routes served by the same operations
	mux.Handle("POST /predict", v1handler.Alias("/v1/assess", v1))
	mux.Handle("GET /health", v1handler.Alias("/v1/health", v1))

	// pprof
	mux.Handle("/debug/pprof/", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	mux.HandleFunc("/", v1handler.NotFound)

	root := controller.WithRecover(mux)
	root = controller.WithTimeout(opts.RequestTimeout)(root)
	root = controller.CORS(opts.CORSOrigins...)(root)
	root = controller.WithLogger(root)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           root,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
