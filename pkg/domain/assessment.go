package domain

import "time"

// RiskLevel is the coarse bucket derived from the predicted class and confidence.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
	RiskLevelSafe   RiskLevel = "safe"
)

// Impact labels the direction of a feature attribution.
type Impact string

const (
	// ImpactIncreases marks a positive contribution (towards phishing).
	ImpactIncreases Impact = "increases risk"
	// ImpactDecreases marks a zero or negative contribution.
	ImpactDecreases Impact = "decreases risk"
)

// ImpactOf labels a signed contribution.
func ImpactOf(contribution float64) Impact {
	if contribution > 0 {
		return ImpactIncreases
	}

	return ImpactDecreases
}

// Feature is one named numeric value of a feature vector.
type Feature struct {
	Name  string
	Value float64
}

// AttributionEntry explains how much a single feature pushed the classifier
// towards (positive) or away from (negative) the phishing class.
type AttributionEntry struct {
	// Feature is the canonical schema name, e.g. "has_login".
	Feature string
	// Label is the human readable name, e.g. "Has Login".
	Label string
	// Value is the observed, unscaled feature value.
	Value float64
	// Contribution is the signed attribution for the phishing class.
	Contribution float64
	// Impact is derived from the sign of Contribution.
	Impact Impact
}

// Anatomy summarizes structural phishing indicators of the analyzed URL.
type Anatomy struct {
	SSL          bool
	IPInDomain   bool
	ShortenedURL bool
}

// RiskAssessment is the explainable result for one analyzed URL. It is built
// once per request by the risk aggregator and never modified afterwards.
type RiskAssessment struct {
	// Result is the human readable verdict, e.g. "High Phishing Risk".
	Result string
	// RiskLevel is one of high, medium, low or safe.
	RiskLevel RiskLevel
	// Confidence is the probability of the predicted class in percent, 2 decimals.
	Confidence float64
	// Prediction is 1 for phishing and 0 for legitimate.
	Prediction int
	// ProbabilityPhishing and ProbabilityLegitimate are percentages with 2 decimals.
	ProbabilityPhishing   float64
	ProbabilityLegitimate float64
	// TopRiskFactors are the highest-magnitude attributions, most important first.
	TopRiskFactors []AttributionEntry
	// AllFeatures is the full feature vector in canonical schema order.
	AllFeatures []Feature
	// URL is the analyzed input as received.
	URL string
	// Reasons are natural-language explanations; never contains empty strings.
	Reasons []string
	Anatomy Anatomy
	// Advice is static guidance shown alongside every verdict.
	Advice string
	// ScannedAt is when the assessment was generated.
	ScannedAt time.Time
}

// FeatureValue returns the value of the named feature.
func (a *RiskAssessment) FeatureValue(name string) (float64, bool) {
	for _, f := range a.AllFeatures {
		if f.Name == name {
			return f.Value, true
		}
	}

	return 0, false
}
