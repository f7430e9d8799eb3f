package features

import (
	"fmt"
	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
	"strings"
	"unicode"
)

// Feature names outside the keyword block.
const (
	URLLength          = "url_length"
	DotCount           = "dot_count"
	HyphenCount        = "hyphen_count"
	SlashCount         = "slash_count"
	DigitCount         = "digit_count"
	SubdomainCount     = "subdomain_count"
	QueryParamsCount   = "query_params_count"
	URLEntropy         = "url_entropy"
	DigitToLetterRatio = "digit_to_letter_ratio"
	DomainLength       = "domain_length"
	DomainAgeDays      = "domain_age_days"
	DomainLifespanDays = "domain_lifespan_days"
	HasHTTPS           = "has_https"
	HasIP              = "has_ip"
	HasAtSymbol        = "has_at_symbol"
	IsShortenedURL     = "is_shortened"
)

// Schema is an ordered, duplicate-free list of feature names.
type Schema struct {
	names []string
	index map[string]int
}

// NewSchema builds a schema from names in order.
func NewSchema(names ...string) (*Schema, error) {
	if len(names) == 0 {
		return nil, serrors.With(serrors.ErrSchemaMismatch, "schema has no features")
	}

	s := &Schema{names: append([]string(nil), names...), index: make(map[string]int, len(names))}
	for i, n := range names {
		if n == "" {
			return nil, serrors.With(serrors.ErrSchemaMismatch, "feature %d has no name", i)
		}
		if _, dup := s.index[n]; dup {
			return nil, serrors.With(serrors.ErrSchemaMismatch, "feature %q is declared twice", n)
		}
		s.index[n] = i
	}

	return s, nil
}

var canonical = mustSchema(canonicalNames()) //nolint: gochecknoglobals

func canonicalNames() []string {
	names := []string{
		URLLength, DotCount, HyphenCount, SlashCount, DigitCount,
		SubdomainCount, QueryParamsCount, URLEntropy, DigitToLetterRatio,
	}
	for _, kw := range suspiciousKeywords {
		names = append(names, KeywordFeature(kw))
	}

	return append(names,
		DomainLength, DomainAgeDays, DomainLifespanDays,
		HasHTTPS, HasIP, HasAtSymbol, IsShortenedURL,
	)
}

func mustSchema(names []string) *Schema {
	s, err := NewSchema(names...)
	if err != nil {
		panic(err)
	}

	return s
}

// Canonical returns the feature schema classifiers are fitted on.
func Canonical() *Schema { return canonical }

// Len returns the number of features.
func (s *Schema) Len() int { return len(s.names) }

// Names returns a copy of the feature names in order.
func (s *Schema) Names() []string { return append([]string(nil), s.names...) }

// Name returns the feature name at position i.
func (s *Schema) Name(i int) string { return s.names[i] }

// Index returns the position of name in the schema.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]

	return i, ok
}

// Check verifies that names match the schema exactly, in order.
func (s *Schema) Check(names []string) error {
	if len(names) != len(s.names) {
		return serrors.With(serrors.ErrSchemaMismatch,
			"expected %d features, got %d", len(s.names), len(names))
	}
	for i, n := range names {
		if n != s.names[i] {
			return serrors.With(serrors.ErrSchemaMismatch,
				"feature %d: expected %q, got %q", i, s.names[i], n)
		}
	}

	return nil
}

// Vector builds a feature vector from named values, which must follow the
// schema's names and order exactly.
func (s *Schema) Vector(values []domain.Feature) (Vector, error) {
	names := make([]string, len(values))
	for i, f := range values {
		names[i] = f.Name
	}
	if err := s.Check(names); err != nil {
		return Vector{}, err
	}

	v := Vector{schema: s, values: make([]float64, len(values))}
	for i, f := range values {
		v.values[i] = f.Value
	}

	return v, nil
}

// Vector is an immutable feature vector bound to a schema.
type Vector struct {
	schema *Schema
	values []float64
}

// Schema returns the schema the vector follows.
func (v Vector) Schema() *Schema { return v.schema }

// Len returns the number of features.
func (v Vector) Len() int { return len(v.values) }

// At returns the value at position i.
func (v Vector) At(i int) float64 { return v.values[i] }

// Values returns a copy of the values in schema order.
func (v Vector) Values() []float64 { return append([]float64(nil), v.values...) }

// Get returns the value of the named feature.
func (v Vector) Get(name string) (float64, bool) {
	if v.schema == nil {
		return 0, false
	}
	i, ok := v.schema.Index(name)
	if !ok {
		return 0, false
	}

	return v.values[i], true
}

// Features returns the named values in schema order.
func (v Vector) Features() []domain.Feature {
	out := make([]domain.Feature, len(v.values))
	for i, val := range v.values {
		out[i] = domain.Feature{Name: v.schema.names[i], Value: val}
	}

	return out
}

// String renders the vector as name=value pairs.
func (v Vector) String() string {
	var b strings.Builder
	for i, val := range v.values {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s=%g", v.schema.names[i], val)
	}

	return b.String()
}

// Label returns the display label of a feature name: underscores become
// spaces and every word is title cased, e.g. "has_login" -> "Has Login".
func Label(name string) string {
	out := []rune(strings.ReplaceAll(name, "_", " "))
	start := true
	for i, r := range out {
		if unicode.IsLetter(r) {
			if start {
				out[i] = unicode.ToUpper(r)
			} else {
				out[i] = unicode.ToLower(r)
			}
			start = false
		} else {
			start = true
		}
	}

	return string(out)
}
