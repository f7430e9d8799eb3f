// Package linear implements the model contracts with a standardized
// logistic regression loaded from a YAML (or JSON) artifact.
//
// Artifact layout:
//
//	name: phishguard-linear-v1
//	features: [url_length, dot_count, ...]
//	scaler:
//	  mean: [...]
//	  scale: [...]
//	classifier:
//	  intercept: -1.2
//	  coefficients: [...]
//
// Attributions are exact for this model family: feature i contributes
// coefficients[i] * scaled[i] to the log-odds of the phishing class.
package linear

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"phishguard/pkg/model"

	"gopkg.in/yaml.v3"
)

// Artifact is the persisted model.
type Artifact struct {
	Name       string         `yaml:"name"`
	Features   []string       `yaml:"features"`
	Scaler     StandardScaler `yaml:"scaler"`
	Classifier Logistic       `yaml:"classifier"`
}

// Load reads the artifact at path and returns a ready bundle.
func Load(path string) (*model.Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model artifact: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	a, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode model artifact %s: %w", path, err)
	}

	return a.Bundle()
}

// Decode reads an artifact from r and validates its dimensions.
func Decode(r io.Reader) (*Artifact, error) {
	var a Artifact
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return &a, nil
}

// Validate checks that every vector has one entry per feature.
func (a *Artifact) Validate() error {
	n := len(a.Features)
	if n == 0 {
		return fmt.Errorf("artifact declares no features")
	}
	if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
		return fmt.Errorf("scaler has %d means and %d scales for %d features",
			len(a.Scaler.Mean), len(a.Scaler.Scale), n)
	}
	if len(a.Classifier.Coefficients) != n {
		return fmt.Errorf("classifier has %d coefficients for %d features", len(a.Classifier.Coefficients), n)
	}

	return nil
}

// Bundle exposes the artifact through the model contracts.
func (a *Artifact) Bundle() (*model.Bundle, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	scaler := a.Scaler
	clf := a.Classifier

	return &model.Bundle{
		Name:       a.Name,
		Features:   append([]string(nil), a.Features...),
		Scaler:     &scaler,
		Classifier: &clf,
		Attributor: &clf,
	}, nil
}

// StandardScaler centers and scales each feature: (x - mean) / scale.
// A zero scale is treated as 1, like a constant training column.
type StandardScaler struct {
	Mean  []float64 `yaml:"mean"`
	Scale []float64 `yaml:"scale"`
}

// Transform implements model.Scaler.
func (s *StandardScaler) Transform(values []float64) ([]float64, error) {
	if len(values) != len(s.Mean) {
		return nil, fmt.Errorf("expected %d values, got %d", len(s.Mean), len(values))
	}

	out := make([]float64, len(values))
	for i, v := range values {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		out[i] = (v - s.Mean[i]) / scale
	}

	return out, nil
}

// Logistic is a binary logistic regression over scaled features.
type Logistic struct {
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients"`
}

// LogOdds returns the decision function for the phishing class.
func (l *Logistic) LogOdds(scaled []float64) (float64, error) {
	if len(scaled) != len(l.Coefficients) {
		return 0, fmt.Errorf("expected %d values, got %d", len(l.Coefficients), len(scaled))
	}

	z := l.Intercept
	for i, x := range scaled {
		z += l.Coefficients[i] * x
	}

	return z, nil
}

// Predict implements model.Classifier.
func (l *Logistic) Predict(_ context.Context, scaled []float64) (model.Prediction, error) {
	z, err := l.LogOdds(scaled)
	if err != nil {
		return model.Prediction{}, err
	}

	p := sigmoid(z)
	class := model.ClassLegitimate
	if z > 0 {
		class = model.ClassPhishing
	}

	return model.Prediction{Class: class, Probabilities: [2]float64{1 - p, p}}, nil
}

// Attribute implements model.Attributor.
func (l *Logistic) Attribute(_ context.Context, scaled []float64) ([]float64, error) {
	if len(scaled) != len(l.Coefficients) {
		return nil, fmt.Errorf("expected %d values, got %d", len(l.Coefficients), len(scaled))
	}

	out := make([]float64, len(scaled))
	for i, x := range scaled {
		out[i] = l.Coefficients[i] * x
	}

	return out, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)

	return e / (1 + e)
}
