// Package feed exposes the feed store over HTTP with JSON and RSS representations.
package feed

import (
	"net/http"

	feedUC "feedstore/internal/usecase/feed"
)

// Register registers all feed-related HTTP handlers with the given mux.
// searchLimit wraps the search endpoint (per-IP rate limiting); nil leaves it unwrapped.
// Static paths (/feeds/xml, /feeds/search) take precedence over /feeds/{id}
// because ServeMux prefers the more specific pattern.
func Register(mux *http.ServeMux, store *feedUC.Store, searchLimit func(http.Handler) http.Handler) {
	var search http.Handler = SearchHandler{store}
	if searchLimit != nil {
		search = searchLimit(search)
	}

	mux.Handle("GET /feeds", ListHandler{store})
	mux.Handle("POST /feeds", CreateHandler{store})
	mux.Handle("GET /feeds/xml", CombinedXMLHandler{store})
	mux.Handle("GET /feeds/search", search)

	mux.Handle("GET /feeds/{id}", GetHandler{store})
	mux.Handle("PUT /feeds/{id}", UpdateHandler{store})
	mux.Handle("DELETE /feeds/{id}", DeleteHandler{store})
	mux.Handle("GET /feeds/{id}/xml", FeedXMLHandler{store})
	mux.Handle("POST /feeds/{id}/entries", AddEntryHandler{store})

	mux.Handle("GET /status", StatusHandler{store})
}
