package http

import (
	"net/http"

	"feedstore/internal/handler/http/respond"
)

const maxPathLength = 2048

// InputValidation returns middleware that rejects overlong paths with 414 and
// caps request bodies at maxBodyBytes. Handlers see an oversize body as
// *http.MaxBytesError while decoding.
func InputValidation(maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, map[string]string{"error": "URI too long"})
				return
			}
			if maxBodyBytes > 0 {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
