package http

import (
	"net/http"
	"strings"
)

// Policy is an ordered list of Content-Security-Policy directives.
type Policy [][2]string

// String renders the policy as a header value.
func (p Policy) String() string {
	parts := make([]string, 0, len(p))
	for _, d := range p {
		parts = append(parts, d[0]+" "+d[1])
	}
	return strings.Join(parts, "; ")
}

// APIPolicy is applied to JSON and RSS responses, which never load subresources.
var APIPolicy = Policy{
	{"default-src", "'none'"},
	{"frame-ancestors", "'none'"},
	{"base-uri", "'self'"},
	{"form-action", "'self'"},
}

// SwaggerUIPolicy allows the inline bootstrap script and styles of the docs page.
var SwaggerUIPolicy = Policy{
	{"default-src", "'self'"},
	{"script-src", "'self' 'unsafe-inline'"},
	{"style-src", "'self' 'unsafe-inline'"},
	{"img-src", "'self' data:"},
	{"font-src", "'self' data:"},
	{"connect-src", "'self'"},
	{"frame-ancestors", "'none'"},
	{"object-src", "'none'"},
}

// SecurityHeadersConfig selects a policy per path prefix; the longest
// matching prefix wins and Default covers everything else.
type SecurityHeadersConfig struct {
	Default      Policy
	PathPolicies map[string]Policy
	ReportOnly   bool
}

// SecurityHeaders sets Content-Security-Policy (or its report-only variant)
// and X-Content-Type-Options on every response.
func SecurityHeaders(cfg SecurityHeadersConfig) func(http.Handler) http.Handler {
	header := "Content-Security-Policy"
	if cfg.ReportOnly {
		header = "Content-Security-Policy-Report-Only"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			if p := cfg.policyFor(r.URL.Path); len(p) > 0 {
				w.Header().Set(header, p.String())
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (cfg SecurityHeadersConfig) policyFor(path string) Policy {
	longest := ""
	var matched Policy
	for prefix, p := range cfg.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			matched = p
		}
	}
	if matched != nil {
		return matched
	}
	return cfg.Default
}
