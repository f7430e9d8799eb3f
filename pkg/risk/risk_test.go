package risk_test

import (
	"math"
	"phishguard/pkg/domain"
	"phishguard/pkg/features"
	"phishguard/pkg/model"
	"phishguard/pkg/risk"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// vectorOf builds a canonical vector with zero values except overrides.
func vectorOf(t *testing.T, overrides map[string]float64) features.Vector {
	t.Helper()

	names := features.Canonical().Names()
	fs := make([]domain.Feature, len(names))
	for i, n := range names {
		fs[i] = domain.Feature{Name: n, Value: overrides[n]}
	}
	v, err := features.Canonical().Vector(fs)
	require.NoError(t, err)

	return v
}

// attributionsOf returns zero attributions except overrides.
func attributionsOf(overrides map[string]float64) []float64 {
	names := features.Canonical().Names()
	out := make([]float64, len(names))
	for i, n := range names {
		out[i] = overrides[n]
	}

	return out
}

func TestLevel(t *testing.T) {
	tests := []struct {
		class      int
		confidence float64
		wantLevel  domain.RiskLevel
		wantResult string
	}{
		{1, 81, domain.RiskLevelHigh, "High Phishing Risk"},
		{1, 70, domain.RiskLevelMedium, "Moderate Phishing Risk"},
		{1, 50, domain.RiskLevelLow, "Low Phishing Risk"},
		{1, 80, domain.RiskLevelMedium, "Moderate Phishing Risk"},
		{1, 60, domain.RiskLevelLow, "Low Phishing Risk"},
		{0, 99, domain.RiskLevelSafe, "Legitimate URL"},
		{0, 51, domain.RiskLevelSafe, "Legitimate URL"},
	}

	for _, tt := range tests {
		level, result := risk.Level(tt.class, tt.confidence)
		require.Equal(t, tt.wantLevel, level, "class=%d confidence=%v", tt.class, tt.confidence)
		require.Equal(t, tt.wantResult, result)
	}
}

func TestRankBreaksTiesBySchemaPosition(t *testing.T) {
	v := vectorOf(t, nil)
	attr := attributionsOf(map[string]float64{
		features.IsShortenedURL: 0.5,
		features.SlashCount:     -0.5,
		features.DotCount:       0.5,
		features.URLEntropy:     0.9,
	})

	ranked, err := risk.Rank(v, attr)
	require.NoError(t, err)
	require.Len(t, ranked, features.Canonical().Len())

	got := []string{ranked[0].Feature, ranked[1].Feature, ranked[2].Feature, ranked[3].Feature}
	require.Equal(t, []string{features.URLEntropy, features.DotCount, features.SlashCount, features.IsShortenedURL}, got)

	// the zero tail keeps schema order
	require.Equal(t, features.URLLength, ranked[4].Feature)
	require.Equal(t, domain.ImpactDecreases, ranked[4].Impact)
	require.Equal(t, domain.ImpactDecreases, ranked[2].Impact)
	require.Equal(t, domain.ImpactIncreases, ranked[0].Impact)
	require.Equal(t, "Url Entropy", ranked[0].Label)
}

func TestRankRejectsBadAttributions(t *testing.T) {
	v := vectorOf(t, nil)

	_, err := risk.Rank(v, []float64{1, 2})
	require.Error(t, err)

	attr := attributionsOf(map[string]float64{features.DotCount: math.NaN()})
	_, err = risk.Rank(v, attr)
	require.Error(t, err)
}

func TestAggregate(t *testing.T) {
	now := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.FixedZone("CET", 3600))
	agg := risk.New(risk.WithClock(func() time.Time { return now }))

	v := vectorOf(t, map[string]float64{
		features.HasIP:          1,
		features.HyphenCount:    2,
		"has_login":             1,
		"has_verify":            1,
		features.DomainAgeDays:  0,
		features.URLLength:      38,
		features.DomainLength:   11,
		features.IsShortenedURL: 0,
	})
	attr := attributionsOf(map[string]float64{
		"has_login":             1.4,
		"has_verify":            1.2,
		features.HasIP:          3.1,
		features.DomainAgeDays:  0.9,
		features.HasHTTPS:       0.8,
		features.HyphenCount:    0.4,
		"has_bank":              -0.2,
		features.IsShortenedURL: -0.1,
	})

	a, err := agg.Aggregate(risk.Input{
		URL:          "http://192.168.1.1/secure-login-verify",
		Vector:       v,
		Prediction:   model.Prediction{Class: 1, Probabilities: [2]float64{0.1234, 0.8766}},
		Attributions: attr,
	})
	require.NoError(t, err)

	require.Equal(t, "High Phishing Risk", a.Result)
	require.Equal(t, domain.RiskLevelHigh, a.RiskLevel)
	require.InDelta(t, 87.66, a.Confidence, 1e-9)
	require.Equal(t, 1, a.Prediction)
	require.InDelta(t, 87.66, a.ProbabilityPhishing, 1e-9)
	require.InDelta(t, 12.34, a.ProbabilityLegitimate, 1e-9)

	require.Len(t, a.TopRiskFactors, risk.DefaultTopFactors)
	top := make([]string, 0, len(a.TopRiskFactors))
	for _, f := range a.TopRiskFactors {
		top = append(top, f.Feature)
	}
	require.Equal(t, []string{features.HasIP, "has_login", "has_verify", features.DomainAgeDays, features.HasHTTPS}, top)

	require.Equal(t, []string{
		"Suspicious keywords: Has Login, Has Verify",
		"Domain age < 1 month",
		"Hyphens in domain/subdomain",
	}, a.Reasons)
	require.Equal(t, domain.Anatomy{SSL: false, IPInDomain: true, ShortenedURL: false}, a.Anatomy)
	require.Equal(t, risk.Advice, a.Advice)
	require.Equal(t, now.UTC(), a.ScannedAt)
	require.Equal(t, time.UTC, a.ScannedAt.Location())
	require.Len(t, a.AllFeatures, features.Canonical().Len())
	require.Equal(t, features.URLLength, a.AllFeatures[0].Name)
}

func TestAggregateLegitimate(t *testing.T) {
	v := vectorOf(t, map[string]float64{
		features.HasHTTPS:           1,
		features.DomainAgeDays:      9000,
		features.DomainLifespanDays: 11000,
		features.IsShortenedURL:     1,
	})
	// a keyword that is absent never shows up as a reason, even when ranked
	attr := attributionsOf(map[string]float64{
		features.DomainAgeDays: -4,
		features.HasHTTPS:      -1,
		"has_login":            -0.5,
	})

	a, err := risk.New().Aggregate(risk.Input{
		URL:          "https://bit.ly/abc",
		Vector:       v,
		Prediction:   model.Prediction{Class: 0, Probabilities: [2]float64{0.9, 0.1}},
		Attributions: attr,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RiskLevelSafe, a.RiskLevel)
	require.Equal(t, "Legitimate URL", a.Result)
	require.InDelta(t, 90, a.Confidence, 1e-9)
	require.Equal(t, []string{"Shortened link detected"}, a.Reasons)
	require.Equal(t, domain.Anatomy{SSL: true, ShortenedURL: true}, a.Anatomy)
}

func TestAggregateTopFactorsOption(t *testing.T) {
	a, err := risk.New(risk.WithTopFactors(2)).Aggregate(risk.Input{
		Vector:       vectorOf(t, nil),
		Prediction:   model.Prediction{Class: 1, Probabilities: [2]float64{0.45, 0.55}},
		Attributions: attributionsOf(nil),
	})
	require.NoError(t, err)
	require.Len(t, a.TopRiskFactors, 2)
	require.Equal(t, domain.RiskLevelLow, a.RiskLevel)
}

func TestAggregateRejectsInvalidInput(t *testing.T) {
	_, err := risk.New().Aggregate(risk.Input{})
	require.Error(t, err)

	_, err = risk.New().Aggregate(risk.Input{
		Vector:       vectorOf(t, nil),
		Prediction:   model.Prediction{Class: 1, Probabilities: [2]float64{0.5, 0.7}},
		Attributions: attributionsOf(nil),
	})
	require.Error(t, err)
}

func TestRound2(t *testing.T) {
	require.InDelta(t, 87.66, risk.Round2(87.655000001), 1e-12)
	require.InDelta(t, 12.34, risk.Round2(12.344), 1e-12)
	require.InDelta(t, 100, risk.Round2(99.999), 1e-12)
}
