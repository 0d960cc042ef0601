package pathutil

import (
	"errors"
	"net/http"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// maxIDLength bounds path IDs. Generated feed IDs are 36-character UUIDs,
// but IDs loaded from an existing storage file may be any string.
const maxIDLength = 128

// ExtractID returns the named path wildcard of a request routed by
// http.ServeMux (e.g. "id" for "/feeds/{id}").
//
// Returns:
//   - string: the trimmed ID
//   - error: ErrInvalidID if the ID is empty, too long or contains control characters
//
// Example:
//
//	mux.Handle("GET /feeds/{id}", h)
//	id, err := ExtractID(r, "id")
func ExtractID(r *http.Request, name string) (string, error) {
	id := strings.TrimSpace(r.PathValue(name))
	if id == "" || len(id) > maxIDLength {
		return "", ErrInvalidID
	}
	for _, c := range id {
		if c < 0x20 || c == 0x7f {
			return "", ErrInvalidID
		}
	}
	return id, nil
}
