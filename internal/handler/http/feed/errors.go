package feed

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"feedstore/internal/domain/entity"
	"feedstore/internal/handler/http/pathutil"
	"feedstore/internal/handler/http/respond"
)

// writeError maps store errors to status codes:
// validation 400, not found 404, everything else (storage) 500.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case entity.IsValidation(err):
		code = http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		code = http.StatusNotFound
	}
	respond.SafeError(w, code, err)
}

// decodeBody decodes a JSON request body into v.
// Failures are returned as *respond.AppError carrying the status to send.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return respond.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", err)
		case errors.Is(err, io.EOF):
			return respond.NewAppError(http.StatusBadRequest, "request body is required", err)
		default:
			return respond.NewAppError(http.StatusBadRequest, "invalid JSON body", err)
		}
	}
	return nil
}

// feedID extracts the {id} wildcard. Malformed IDs cannot name a stored feed,
// so they are reported like unknown ones.
func feedID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := pathutil.ExtractID(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusNotFound, errors.New("feed not found"))
		return "", false
	}
	return id, true
}
