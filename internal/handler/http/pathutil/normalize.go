package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// staticFeedPaths are literal routes under /feeds/ that must not be mistaken for IDs.
var staticFeedPaths = map[string]struct{}{
	"/feeds/xml":    {},
	"/feeds/search": {},
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/feeds/[^/]+/xml$`), Template: "/feeds/:id/xml"},
	{Pattern: regexp.MustCompile(`^/feeds/[^/]+/entries$`), Template: "/feeds/:id/entries"},
	{Pattern: regexp.MustCompile(`^/feeds/[^/]+$`), Template: "/feeds/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with feed IDs (e.g., /feeds/0b7c...) to template format (e.g., /feeds/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/feeds/0b7c2f9e")          // "/feeds/:id"
//	NormalizePath("/feeds/0b7c2f9e/xml")      // "/feeds/:id/xml"
//	NormalizePath("/feeds/0b7c2f9e/entries")  // "/feeds/:id/entries"
//	NormalizePath("/feeds/xml")               // "/feeds/xml" (unchanged)
//	NormalizePath("/feeds/search?title=go")   // "/feeds/search"
//	NormalizePath("/health")                  // "/health" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticFeedPaths[path]; ok {
		return path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
