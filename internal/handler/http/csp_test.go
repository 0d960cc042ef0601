package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_String(t *testing.T) {
	assert.Equal(t,
		"default-src 'none'; frame-ancestors 'none'; base-uri 'self'; form-action 'self'",
		APIPolicy.String())
	assert.Equal(t, "", Policy{}.String())
}

func TestSecurityHeaders(t *testing.T) {
	cfg := SecurityHeadersConfig{
		Default: APIPolicy,
		PathPolicies: map[string]Policy{
			"/swagger/":        SwaggerUIPolicy,
			"/swagger/legacy/": {{"default-src", "'self'"}},
		},
	}
	h := SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		path string
		want string
	}{
		{path: "/feeds", want: APIPolicy.String()},
		{path: "/feeds/xml", want: APIPolicy.String()},
		{path: "/swagger/index.html", want: SwaggerUIPolicy.String()},
		{path: "/swagger/legacy/index.html", want: "default-src 'self'"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.want, rec.Header().Get("Content-Security-Policy"))
			assert.Empty(t, rec.Header().Get("Content-Security-Policy-Report-Only"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestSecurityHeaders_ReportOnly(t *testing.T) {
	h := SecurityHeaders(SecurityHeadersConfig{Default: APIPolicy, ReportOnly: true})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, APIPolicy.String(), rec.Header().Get("Content-Security-Policy-Report-Only"))
}

func TestSecurityHeaders_NoPolicy(t *testing.T) {
	h := SecurityHeaders(SecurityHeadersConfig{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feeds", nil))

	_, set := rec.Header()["Content-Security-Policy"]
	assert.False(t, set)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
