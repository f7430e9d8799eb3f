package features

import (
	"context"
	"phishguard/pkg/domain"
	"strings"
	"unicode/utf8"
)

// Extraction is the result of extracting one URL.
type Extraction struct {
	// URL is the raw input.
	URL    string
	Parsed ParsedURL
	Stats  LexicalStats
	Domain DomainInfo
	Vector Vector
}

// Degraded reports whether any component fell back to defaults.
func (x *Extraction) Degraded() bool {
	return x.Parsed.Lenient || x.Domain.Degraded()
}

// Extractor assembles feature vectors following a schema.
type Extractor struct {
	schema   *Schema
	resolver *Resolver
}

// NewExtractor creates an extractor for the canonical schema.
func NewExtractor(resolver *Resolver) *Extractor {
	return &Extractor{schema: Canonical(), resolver: resolver}
}

// Schema returns the schema vectors are assembled against.
func (e *Extractor) Schema() *Schema { return e.schema }

// Extract parses raw and assembles its feature vector. The only error is a
// serrors.ErrSchemaMismatch when the assembled features drift from the schema.
func (e *Extractor) Extract(ctx context.Context, raw string) (*Extraction, error) {
	p := Parse(raw)
	x := &Extraction{
		URL:    raw,
		Parsed: p,
		Stats:  Lexical(raw, p),
		Domain: e.resolver.Resolve(ctx, p),
	}

	v, err := e.schema.Vector(assemble(raw, x))
	if err != nil {
		return nil, err
	}
	x.Vector = v

	return x, nil
}

// assemble emits the features in canonical order.
func assemble(raw string, x *Extraction) []domain.Feature {
	s := x.Stats
	out := make([]domain.Feature, 0, canonical.Len())
	add := func(name string, v float64) {
		out = append(out, domain.Feature{Name: name, Value: v})
	}

	add(URLLength, float64(s.Length))
	add(DotCount, float64(s.Dots))
	add(HyphenCount, float64(s.Hyphens))
	add(SlashCount, float64(s.Slashes))
	add(DigitCount, float64(s.Digits))
	add(SubdomainCount, float64(s.Subdomains))
	add(QueryParamsCount, float64(s.QueryParams))
	add(URLEntropy, s.Entropy)
	add(DigitToLetterRatio, s.DigitLetterRatio)

	for i, hit := range MatchKeywords(raw) {
		add(KeywordFeature(suspiciousKeywords[i]), flag(hit))
	}

	add(DomainLength, float64(utf8.RuneCountInString(x.Parsed.Domain)))
	add(DomainAgeDays, float64(x.Domain.AgeDays))
	add(DomainLifespanDays, float64(x.Domain.LifespanDays))
	add(HasHTTPS, flag(x.Parsed.Scheme == "https"))
	add(HasIP, flag(IsIPv4Literal(x.Parsed.Hostname)))
	add(HasAtSymbol, flag(strings.ContainsRune(raw, '@')))
	add(IsShortenedURL, flag(IsShortened(x.Parsed.Domain)))

	return out
}

func flag(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
