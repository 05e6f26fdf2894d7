package middleware

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/idna"
)

// OriginPolicy decides which cross-origin web callers may invoke the API
// with credentials. It is constructed once at startup from a set of exact
// origins plus host suffix rules. Non-matching origins are rejected.
type OriginPolicy struct {
	exact    map[string]struct{}
	suffixes []string
}

// NewOriginPolicy builds a policy from exact origins (scheme://host[:port])
// and host suffixes (".example.com" admits every subdomain). Entries that do
// not parse are dropped.
func NewOriginPolicy(origins, hostSuffixes []string) *OriginPolicy {
	p := &OriginPolicy{exact: make(map[string]struct{}, len(origins))}
	for _, origin := range origins {
		if normalized, ok := normalizeOrigin(origin); ok {
			p.exact[normalized] = struct{}{}
		}
	}
	for _, suffix := range hostSuffixes {
		suffix = strings.ToLower(strings.TrimSpace(suffix))
		suffix = strings.TrimPrefix(suffix, "*")
		suffix = strings.TrimPrefix(suffix, ".")
		if suffix == "" {
			continue
		}
		if ascii, err := idna.Lookup.ToASCII(suffix); err == nil {
			suffix = ascii
		}
		p.suffixes = append(p.suffixes, "."+suffix)
	}
	return p
}

// Allows reports whether the origin may call the API. Requests without an
// Origin header (curl, mobile clients) are not subject to the policy.
func (p *OriginPolicy) Allows(origin string) bool {
	if strings.TrimSpace(origin) == "" {
		return true
	}

	normalized, ok := normalizeOrigin(origin)
	if !ok {
		return false
	}
	if _, found := p.exact[normalized]; found {
		return true
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	host := u.Hostname()
	for _, suffix := range p.suffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	return false
}

// normalizeOrigin lowercases the scheme and IDNA-normalizes the host so that
// punycode and Unicode spellings of the same origin compare equal.
func normalizeOrigin(origin string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}

	rebuilt := strings.ToLower(u.Scheme) + "://" + host
	if port := u.Port(); port != "" {
		rebuilt += ":" + port
	}
	return rebuilt, true
}

// CORS gates cross-origin callers with the policy. Blocked origins are
// logged and rejected, never allowed through.
func CORS(policy *OriginPolicy) echo.MiddlewareFunc {
	return echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			allowed := policy.Allows(origin)
			if !allowed {
				log.Printf("cors origin=%s blocked", origin)
			}
			return allowed, nil
		},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
	})
}
