package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		wantID    string
		wantError error
	}{
		{name: "uuid", id: "0b7c2f9e-5d1a-4c11-9a4e-2f4a1b3c5d6e", wantID: "0b7c2f9e-5d1a-4c11-9a4e-2f4a1b3c5d6e"},
		{name: "legacy key", id: "tech-blog", wantID: "tech-blog"},
		{name: "empty", id: "", wantError: ErrInvalidID},
		{name: "blank", id: "   ", wantError: ErrInvalidID},
		{name: "too long", id: strings.Repeat("a", maxIDLength+1), wantError: ErrInvalidID},
		{name: "control character", id: "abc\x01", wantError: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/feeds/x", nil)
			req.SetPathValue("id", tt.id)

			gotID, gotErr := ExtractID(req, "id")

			if gotID != tt.wantID {
				t.Errorf("ExtractID() id = %q, want %q", gotID, tt.wantID)
			}
			if !errors.Is(gotErr, tt.wantError) {
				t.Errorf("ExtractID() error = %v, want %v", gotErr, tt.wantError)
			}
		})
	}
}

func TestExtractID_FromServeMux(t *testing.T) {
	var got string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /feeds/{id}/xml", func(w http.ResponseWriter, r *http.Request) {
		got, _ = ExtractID(r, "id")
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/feeds/abc-123/xml", nil))

	if got != "abc-123" {
		t.Errorf("ExtractID() = %q, want %q", got, "abc-123")
	}
}
