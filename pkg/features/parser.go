package features

import (
	"net/url"
	"strings"
)

// ParsedURL holds the components of a raw URL used by the extractors.
type ParsedURL struct {
	// Scheme is lowercased, e.g. "https".
	Scheme string
	// Domain is the lowercased authority without userinfo, port included.
	Domain string
	// Hostname is Domain without port or IPv6 brackets.
	Hostname string
	Path     string
	Query    string
	// Lenient is set when the standard parser rejected the input and the
	// components were recovered by a plain split.
	Lenient bool
}

// Parse splits raw into its components. It never fails; components that
// cannot be recovered are left empty.
func Parse(raw string) ParsedURL {
	u, err := url.Parse(raw)
	if err != nil {
		return parseLenient(raw)
	}

	return ParsedURL{
		Scheme:   strings.ToLower(u.Scheme),
		Domain:   strings.ToLower(u.Host),
		Hostname: strings.ToLower(u.Hostname()),
		Path:     u.EscapedPath(),
		Query:    u.RawQuery,
	}
}

func parseLenient(raw string) ParsedURL {
	p := ParsedURL{Lenient: true}

	rest := raw
	if i := strings.Index(rest, "#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.Index(rest, "?"); i >= 0 {
		p.Query = rest[i+1:]
		rest = rest[:i]
	}

	if scheme, after, ok := strings.Cut(rest, ":"); ok && validScheme(scheme) {
		p.Scheme = strings.ToLower(scheme)
		rest = after
	}

	if authority, ok := strings.CutPrefix(rest, "//"); ok {
		host, path, _ := strings.Cut(authority, "/")
		if i := strings.LastIndex(host, "@"); i >= 0 {
			host = host[i+1:]
		}
		p.Domain = strings.ToLower(host)
		p.Hostname = hostnameOf(p.Domain)
		if path != "" || strings.Contains(authority, "/") {
			p.Path = "/" + path
		}
	} else {
		p.Path = rest
	}

	return p
}

func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return true
}

func hostnameOf(domain string) string {
	if strings.HasPrefix(domain, "[") {
		if i := strings.Index(domain, "]"); i > 0 {
			return domain[1:i]
		}

		return strings.TrimPrefix(domain, "[")
	}
	if i := strings.LastIndex(domain, ":"); i >= 0 {
		return domain[:i]
	}

	return domain
}

// QueryParamCount returns the number of distinct query keys carrying at least
// one non-empty value. Only '&' separates pairs, so "a=1;b=2" is one key.
func QueryParamCount(query string) int {
	if query == "" {
		return 0
	}

	seen := make(map[string]struct{})
	for _, pair := range strings.Split(query, "&") {
		key, value, _ := strings.Cut(pair, "=")
		if value == "" {
			continue
		}
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		seen[key] = struct{}{}
	}

	return len(seen)
}
