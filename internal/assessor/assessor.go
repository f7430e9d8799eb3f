// Package assessor holds the runtime that turns a raw URL into a risk
// assessment. The runtime is built once at startup, validated against the
// model artifacts and shared read-only by every request.
//
//go:generate mockgen -package mockassessor -source=assessor.go -destination=mock/mockassessor.go *
package assessor

import (
	"context"
	"errors"
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/features"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/model"
	"phishguard/pkg/registry"
	"phishguard/pkg/risk"
	"phishguard/pkg/serrors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SelfTestURL is extracted at startup to fix and verify the feature schema.
const SelfTestURL = "https://example.com"

// User facing messages of the pipeline errors.
const (
	MsgNoURL            = "No URL provided"
	MsgModelUnavailable = "Model not loaded properly"
	MsgPredictionFailed = "Prediction failed"
)

// Assessor scores URLs.
type Assessor interface {
	// Assess extracts, scores and explains rawURL.
	Assess(ctx context.Context, rawURL string) (*domain.RiskAssessment, error)
	// Ready reports whether the model artifacts are loaded.
	Ready() bool
}

// Options configures a Runtime.
type Options struct {
	// Registry answers registration lookups; nil disables them.
	Registry registry.Registry
	// LookupTimeout bounds each registration lookup.
	LookupTimeout time.Duration
	// TopFactors is the number of ranked attributions reported.
	TopFactors int
	// Now overrides the clock for domain ages and timestamps.
	Now func() time.Time
}

// Runtime is the immutable assessment context.
type Runtime struct {
	extractor  *features.Extractor
	bundle     *model.Bundle
	aggregator *risk.Aggregator

	tracer      trace.Tracer
	assessments metric.Int64Counter
	duration    metric.Float64Histogram
	lookups     metric.Int64Counter
}

var _ Assessor = (*Runtime)(nil)

// New builds the runtime and runs the startup self-test. A nil or partially
// loaded bundle is accepted and makes the runtime report not ready; a bundle
// that disagrees with the feature schema fails with serrors.ErrSchemaMismatch.
func New(ctx context.Context, bundle *model.Bundle, opts Options) (*Runtime, error) {
	lookup := opts.Registry
	if lookup == nil {
		lookup = registry.Offline
	}

	resolverOpts := []features.ResolverOption{features.WithLookupTimeout(opts.LookupTimeout)}
	aggregatorOpts := []risk.Option{risk.WithTopFactors(opts.TopFactors)}
	if opts.Now != nil {
		resolverOpts = append(resolverOpts, features.WithClock(opts.Now))
		aggregatorOpts = append(aggregatorOpts, risk.WithClock(opts.Now))
	}

	r := &Runtime{
		extractor:  features.NewExtractor(features.NewResolver(lookup, resolverOpts...)),
		bundle:     bundle,
		aggregator: risk.New(aggregatorOpts...),
		tracer:     otel.Tracer(metrics.MeterName),
	}
	if err := r.setupInstruments(); err != nil {
		return nil, err
	}

	if err := r.selfTest(ctx); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Runtime) setupInstruments() error {
	meter := otel.Meter(metrics.MeterName)

	var err error
	r.assessments, err = meter.Int64Counter("phishguard_assessments_total",
		metric.WithDescription("Completed URL assessments by risk level."))
	if err != nil {
		return fmt.Errorf("could not create assessments counter: %w", err)
	}

	r.duration, err = meter.Float64Histogram("phishguard_assessment_duration_seconds",
		metric.WithDescription("Time spent assessing one URL."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return fmt.Errorf("could not create duration histogram: %w", err)
	}

	r.lookups, err = meter.Int64Counter("phishguard_registration_lookups_total",
		metric.WithDescription("Registration lookups by outcome."))
	if err != nil {
		return fmt.Errorf("could not create lookups counter: %w", err)
	}

	return nil
}

// selfTest extracts SelfTestURL without network access and checks the
// resulting schema against the bundle.
func (r *Runtime) selfTest(ctx context.Context) error {
	offline := features.NewExtractor(features.NewResolver(registry.Offline))
	x, err := offline.Extract(ctx, SelfTestURL)
	if err != nil {
		return fmt.Errorf("self-test extraction failed: %w", err)
	}

	schema := x.Vector.Schema()
	if err := features.Canonical().Check(schema.Names()); err != nil {
		return err //nolint: wrapcheck
	}

	if !r.bundle.Ready() {
		logger.Warn(ctx, "model artifacts are not loaded, assessments are disabled")

		return nil
	}

	if r.bundle.Dimension() != schema.Len() {
		return serrors.With(serrors.ErrSchemaMismatch,
			"model %q expects %d features, extractor produces %d", r.bundle.Name, r.bundle.Dimension(), schema.Len())
	}
	if err := schema.Check(r.bundle.Features); err != nil {
		return serrors.Wrap(serrors.ErrSchemaMismatch, err, "model %q was fitted on a different schema", r.bundle.Name)
	}

	if _, _, err := r.bundle.Score(ctx, x.Vector.Values()); err != nil {
		if errors.Is(err, serrors.ErrSchemaMismatch) {
			return err //nolint: wrapcheck
		}

		return serrors.Wrap(serrors.ErrInternal, err, "self-test scoring failed")
	}

	logger.Info(ctx, "assessment runtime ready",
		zap.String("model", r.bundle.Name),
		zap.Int("features", schema.Len()))

	return nil
}

// Ready implements Assessor.
func (r *Runtime) Ready() bool {
	return r.bundle.Ready()
}

// Schema returns the feature schema every vector follows.
func (r *Runtime) Schema() *features.Schema {
	return r.extractor.Schema()
}

// ModelName returns the name of the loaded artifacts, if any.
func (r *Runtime) ModelName() string {
	if r.bundle == nil {
		return ""
	}

	return r.bundle.Name
}

// Assess implements Assessor.
func (r *Runtime) Assess(ctx context.Context, rawURL string) (res *domain.RiskAssessment, err error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, MsgNoURL)
	}
	if !r.Ready() {
		return nil, serrors.With(serrors.ErrUnavailable, MsgModelUnavailable)
	}

	ctx, span := r.tracer.Start(ctx, "assessor.Assess", trace.WithAttributes(attribute.String("url", rawURL)))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.String("url", rawURL))
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "recovered panic while assessing URL", zap.Any("panic", p), zap.Stack("stack"))
			res, err = nil, serrors.With(serrors.ErrInternal, "%s: %v", MsgPredictionFailed, p)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	x, err := r.extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, MsgPredictionFailed)
	}
	r.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(x.Domain.Status))))
	if x.Degraded() {
		logger.Debug(ctx, "extraction degraded",
			zap.Bool("lenientParse", x.Parsed.Lenient),
			zap.String("lookup", string(x.Domain.Status)))
	}

	pred, attributions, err := r.bundle.Score(ctx, x.Vector.Values())
	if err != nil {
		if errors.Is(err, serrors.ErrUnavailable) {
			return nil, err //nolint: wrapcheck
		}
		logger.Error(ctx, "could not score URL", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrInternal, err, MsgPredictionFailed)
	}

	res, err = r.aggregator.Aggregate(risk.Input{
		URL:          rawURL,
		Vector:       x.Vector,
		Prediction:   pred,
		Attributions: attributions,
	})
	if err != nil {
		logger.Error(ctx, "could not aggregate assessment", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrInternal, err, MsgPredictionFailed)
	}

	r.assessments.Add(ctx, 1, metric.WithAttributes(attribute.String("risk_level", string(res.RiskLevel))))
	r.duration.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.String("risk_level", string(res.RiskLevel)),
		attribute.Float64("confidence", res.Confidence))

	return res, nil
}
