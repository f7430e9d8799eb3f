package features_test

import (
	"phishguard/pkg/features"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"a", 0},
		{strings.Repeat("z", 64), 0},
		{"ab", 1},
		{"abcd", 2},
		{"aabb", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.InDelta(t, tt.want, features.Entropy(tt.in), 1e-12)
		})
	}
}

func TestLexical(t *testing.T) {
	raw := "http://192.168.1.1/secure-login-verify"
	s := features.Lexical(raw, features.Parse(raw))

	require.Equal(t, len(raw), s.Length)
	require.Equal(t, 3, s.Dots)
	require.Equal(t, 2, s.Hyphens)
	require.Equal(t, 3, s.Slashes)
	require.Equal(t, 8, s.Digits)
	require.Equal(t, 2, s.Subdomains)
	require.Equal(t, 0, s.QueryParams)
	require.InDelta(t, 8.0/float64(s.Letters), s.DigitLetterRatio, 1e-12)
}

func TestLexicalCountsCharacters(t *testing.T) {
	raw := "https://www.bücher.example/straße"
	s := features.Lexical(raw, features.Parse(raw))

	require.Equal(t, len([]rune(raw)), s.Length)
	require.Equal(t, 1, s.Subdomains)
}

func TestLexicalNoLetters(t *testing.T) {
	s := features.Lexical("1234", features.Parse("1234"))

	require.Equal(t, 4, s.Digits)
	require.InDelta(t, 4.0, s.DigitLetterRatio, 0)
	require.Equal(t, 0, s.Subdomains)
}
