package features

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LexicalStats are character-level statistics over the raw URL.
type LexicalStats struct {
	Length           int
	Dots             int
	Hyphens          int
	Slashes          int
	Digits           int
	Letters          int
	Subdomains       int
	QueryParams      int
	Entropy          float64
	DigitLetterRatio float64
}

// Lexical computes the lexical statistics of raw. Counts are in characters,
// not bytes.
func Lexical(raw string, p ParsedURL) LexicalStats {
	s := LexicalStats{
		Length:      utf8.RuneCountInString(raw),
		QueryParams: QueryParamCount(p.Query),
		Entropy:     Entropy(raw),
	}

	for _, r := range raw {
		switch {
		case r == '.':
			s.Dots++
		case r == '-':
			s.Hyphens++
		case r == '/':
			s.Slashes++
		case unicode.IsDigit(r):
			s.Digits++
		case unicode.IsLetter(r):
			s.Letters++
		}
	}

	if p.Domain != "" {
		s.Subdomains = max(0, strings.Count(p.Domain, ".")-1)
	}
	s.DigitLetterRatio = float64(s.Digits) / float64(max(s.Letters, 1))

	return s
}

// Entropy returns the Shannon entropy, in bits, of the character
// distribution of s. The empty string has zero entropy.
func Entropy(s string) float64 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}

	counts := make(map[rune]int)
	order := make([]rune, 0, n)
	for _, r := range s {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	// sum in first-seen order so results are reproducible bit for bit
	var h float64
	for _, r := range order {
		p := float64(counts[r]) / float64(n)
		h -= p * math.Log2(p)
	}
	if h == 0 {
		return 0
	}

	return h
}
