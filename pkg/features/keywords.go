package features

import "strings"

// KeywordsVersion identifies the suspicious term list. Changing the list
// changes the feature schema and invalidates fitted artifacts.
const KeywordsVersion = 1

var suspiciousKeywords = []string{ //nolint: gochecknoglobals
	"login", "secure", "bank", "account", "update", "verify",
	"signin", "password", "confirm", "suspend", "locked",
	"urgent", "immediate", "expire", "renewal", "security",
	"alert", "warning", "notice", "action", "required",
}

var shortenerDomains = []string{ //nolint: gochecknoglobals
	"bit.ly", "tinyurl.com", "goo.gl", "ow.ly", "t.co",
	"short.link", "tiny.cc", "lnkd.in", "buff.ly", "ift.tt",
}

// Keywords returns the suspicious terms in schema order.
func Keywords() []string {
	return append([]string(nil), suspiciousKeywords...)
}

// KeywordFeature returns the feature name of a keyword hit, e.g. "has_login".
func KeywordFeature(keyword string) string {
	return "has_" + keyword
}

// IsKeywordFeature reports whether name is the feature of a suspicious term.
func IsKeywordFeature(name string) bool {
	kw, ok := strings.CutPrefix(name, "has_")

	return ok && keywordIndex(kw) >= 0
}

func keywordIndex(kw string) int {
	for i, k := range suspiciousKeywords {
		if k == kw {
			return i
		}
	}

	return -1
}

// MatchKeywords reports, per suspicious term, whether the lowercased URL
// contains it.
func MatchKeywords(raw string) []bool {
	lower := strings.ToLower(raw)
	hits := make([]bool, len(suspiciousKeywords))
	for i, kw := range suspiciousKeywords {
		hits[i] = strings.Contains(lower, kw)
	}

	return hits
}

// IsShortened reports whether domain contains a known link shortener.
// Matching is by substring, so "t.co" also matches e.g. "microsoft.com".
func IsShortened(domain string) bool {
	for _, s := range shortenerDomains {
		if strings.Contains(domain, s) {
			return true
		}
	}

	return false
}
