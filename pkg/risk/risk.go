// Package risk turns a prediction and its per-feature attributions into an
// explainable RiskAssessment: ranked risk factors, natural-language reasons,
// a risk level and an anatomy summary.
package risk

import (
	"cmp"
	"fmt"
	"math"
	"phishguard/pkg/domain"
	"phishguard/pkg/features"
	"phishguard/pkg/model"
	"slices"
	"strings"
	"time"
)

const (
	// DefaultTopFactors is how many ranked attributions are reported.
	DefaultTopFactors = 5

	// Advice is shown alongside every verdict.
	Advice = "Never enter credentials. Use trusted sites. Report suspicious domains."

	highThreshold     = 80
	moderateThreshold = 60
	youngDomainDays   = 30
)

// Input is everything the aggregator needs for one URL.
type Input struct {
	URL          string
	Vector       features.Vector
	Prediction   model.Prediction
	Attributions []float64
}

// Aggregator builds risk assessments. It holds no per-request state.
type Aggregator struct {
	topN int
	now  func() time.Time
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithTopFactors overrides DefaultTopFactors.
func WithTopFactors(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithClock overrides time.Now for the scan timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// New creates an aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{topN: DefaultTopFactors, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Aggregate builds the assessment for in.
func (a *Aggregator) Aggregate(in Input) (*domain.RiskAssessment, error) {
	if in.Vector.Schema() == nil {
		return nil, fmt.Errorf("feature vector is empty")
	}
	if err := in.Prediction.Validate(); err != nil {
		return nil, fmt.Errorf("invalid prediction: %w", err)
	}

	ranked, err := Rank(in.Vector, in.Attributions)
	if err != nil {
		return nil, err
	}
	top := ranked[:min(a.topN, len(ranked))]

	confidence := 100 * max(in.Prediction.Legitimate(), in.Prediction.Phishing())
	level, result := Level(in.Prediction.Class, confidence)

	return &domain.RiskAssessment{
		Result:                result,
		RiskLevel:             level,
		Confidence:            Round2(confidence),
		Prediction:            in.Prediction.Class,
		ProbabilityPhishing:   Round2(100 * in.Prediction.Phishing()),
		ProbabilityLegitimate: Round2(100 * in.Prediction.Legitimate()),
		TopRiskFactors:        top,
		AllFeatures:           in.Vector.Features(),
		URL:                   in.URL,
		Reasons:               Reasons(top, in.Vector),
		Anatomy:               AnatomyOf(in.Vector),
		Advice:                Advice,
		ScannedAt:             a.now().UTC(),
	}, nil
}

// Rank pairs every feature with its attribution and orders the entries by
// descending absolute contribution. Equal magnitudes keep schema order.
func Rank(v features.Vector, attributions []float64) ([]domain.AttributionEntry, error) {
	if len(attributions) != v.Len() {
		return nil, fmt.Errorf("got %d attributions for %d features", len(attributions), v.Len())
	}

	entries := make([]domain.AttributionEntry, v.Len())
	for i, f := range v.Features() {
		c := attributions[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("attribution for %s is not finite", f.Name)
		}
		entries[i] = domain.AttributionEntry{
			Feature:      f.Name,
			Label:        features.Label(f.Name),
			Value:        f.Value,
			Contribution: c,
			Impact:       domain.ImpactOf(c),
		}
	}

	slices.SortStableFunc(entries, func(x, y domain.AttributionEntry) int {
		return cmp.Compare(math.Abs(y.Contribution), math.Abs(x.Contribution))
	})

	return entries, nil
}

// Level maps a predicted class and its confidence (in percent) to a risk
// level and verdict. Thresholds are strict.
func Level(class int, confidence float64) (domain.RiskLevel, string) {
	switch {
	case class != model.ClassPhishing:
		return domain.RiskLevelSafe, "Legitimate URL"
	case confidence > highThreshold:
		return domain.RiskLevelHigh, "High Phishing Risk"
	case confidence > moderateThreshold:
		return domain.RiskLevelMedium, "Moderate Phishing Risk"
	default:
		return domain.RiskLevelLow, "Low Phishing Risk"
	}
}

// Reasons explains the verdict in plain language. Reasons whose trigger is
// not met are omitted, so the result never contains empty strings.
func Reasons(top []domain.AttributionEntry, v features.Vector) []string {
	reasons := make([]string, 0, 4)

	var keywords []string
	for _, e := range top {
		if features.IsKeywordFeature(e.Feature) && e.Value > 0 {
			keywords = append(keywords, e.Label)
		}
	}
	if len(keywords) > 0 {
		reasons = append(reasons, "Suspicious keywords: "+strings.Join(keywords, ", "))
	}

	if value(v, features.IsShortenedURL) > 0 {
		reasons = append(reasons, "Shortened link detected")
	}
	if value(v, features.DomainAgeDays) < youngDomainDays {
		reasons = append(reasons, "Domain age < 1 month")
	}
	if value(v, features.HyphenCount) > 0 {
		reasons = append(reasons, "Hyphens in domain/subdomain")
	}

	return reasons
}

// AnatomyOf summarizes the structural indicators of v.
func AnatomyOf(v features.Vector) domain.Anatomy {
	return domain.Anatomy{
		SSL:          value(v, features.HasHTTPS) > 0,
		IPInDomain:   value(v, features.HasIP) > 0,
		ShortenedURL: value(v, features.IsShortenedURL) > 0,
	}
}

// Round2 rounds x to 2 decimals, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func value(v features.Vector, name string) float64 {
	x, _ := v.Get(name)

	return x
}
