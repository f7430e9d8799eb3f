// Package model defines the contracts of the scoring artifacts consumed by
// the assessment pipeline: a feature scaler, a binary classifier and an
// attribution engine. Implementations live in sub-packages.
package model

import (
	"context"
	"fmt"
	"math"
	"phishguard/pkg/serrors"
)

// Class labels.
const (
	ClassLegitimate = 0
	ClassPhishing   = 1
)

// Prediction is the classifier output for one vector.
type Prediction struct {
	// Class is ClassLegitimate or ClassPhishing.
	Class int
	// Probabilities holds [p_legit, p_phish], summing to 1.
	Probabilities [2]float64
}

// Legitimate returns p_legit.
func (p Prediction) Legitimate() float64 { return p.Probabilities[ClassLegitimate] }

// Phishing returns p_phish.
func (p Prediction) Phishing() float64 { return p.Probabilities[ClassPhishing] }

// Validate checks the class label and the probability pair.
func (p Prediction) Validate() error {
	if p.Class != ClassLegitimate && p.Class != ClassPhishing {
		return fmt.Errorf("unknown class %d", p.Class)
	}
	for _, v := range p.Probabilities {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("probability %v out of range", v)
		}
	}
	if sum := p.Probabilities[0] + p.Probabilities[1]; math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("probabilities sum to %v", sum)
	}

	return nil
}

// Scaler maps raw feature values to the space the classifier was fitted in.
type Scaler interface {
	Transform(values []float64) ([]float64, error)
}

// Classifier scores a scaled vector.
type Classifier interface {
	Predict(ctx context.Context, scaled []float64) (Prediction, error)
}

// Attributor explains a scaled vector with one signed value per feature.
// Positive values push towards ClassPhishing, on the classifier's log-odds
// scale.
type Attributor interface {
	Attribute(ctx context.Context, scaled []float64) ([]float64, error)
}

// Bundle groups the artifacts loaded once at startup.
type Bundle struct {
	// Name identifies the artifact set in logs.
	Name string
	// Features are the feature names the artifacts were fitted on, in order.
	Features []string

	Scaler     Scaler
	Classifier Classifier
	Attributor Attributor
}

// Ready reports whether scaler, classifier and attributor are all present.
func (b *Bundle) Ready() bool {
	return b != nil && b.Scaler != nil && b.Classifier != nil && b.Attributor != nil
}

// Dimension returns the expected input dimensionality.
func (b *Bundle) Dimension() int {
	if b == nil {
		return 0
	}

	return len(b.Features)
}

// Score runs scaler, classifier and attributor over values and checks the
// shapes of their outputs.
func (b *Bundle) Score(ctx context.Context, values []float64) (Prediction, []float64, error) {
	if !b.Ready() {
		return Prediction{}, nil, serrors.With(serrors.ErrUnavailable, "model artifacts are not loaded")
	}
	if len(values) != b.Dimension() {
		return Prediction{}, nil, serrors.With(serrors.ErrSchemaMismatch,
			"expected %d features, got %d", b.Dimension(), len(values))
	}

	scaled, err := b.Scaler.Transform(values)
	if err != nil {
		return Prediction{}, nil, fmt.Errorf("could not scale features: %w", err)
	}

	pred, err := b.Classifier.Predict(ctx, scaled)
	if err != nil {
		return Prediction{}, nil, fmt.Errorf("could not classify: %w", err)
	}
	if err := pred.Validate(); err != nil {
		return Prediction{}, nil, fmt.Errorf("invalid prediction: %w", err)
	}

	attributions, err := b.Attributor.Attribute(ctx, scaled)
	if err != nil {
		return Prediction{}, nil, fmt.Errorf("could not attribute: %w", err)
	}
	if len(attributions) != len(values) {
		return Prediction{}, nil, fmt.Errorf("attributor returned %d values for %d features",
			len(attributions), len(values))
	}

	return pred, attributions, nil
}
