package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	feedUC "feedstore/internal/usecase/feed"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"` // "healthy", "degraded" or "unhealthy"
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// StatusSource reports the feed store's size and settings.
type StatusSource interface {
	Status(ctx context.Context) feedUC.Status
}

// HealthHandler reports whether the storage file is usable and how large the
// collection is. It answers 503 when any check is unhealthy.
type HealthHandler struct {
	Store   StatusSource
	Version string
	Now     func() time.Time
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.Store == nil {
		checks["storage"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	} else {
		st := h.Store.Status(r.Context())
		storage := checkStorage(st.StoragePath)
		checks["storage"] = storage
		if storage.Status == "unhealthy" {
			allHealthy = false
		}
		checks["feeds"] = CheckStatus{
			Status: "healthy",
			Details: map[string]any{
				"feed_count":           st.FeedCount,
				"entry_count":          st.EntryCount,
				"history_days":         st.HistoryDays,
				"max_entries_per_feed": st.MaxEntriesPerFeed,
			},
		}
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	response := HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}

// checkStorage inspects the storage file. A missing file is fine while its
// directory exists or can still be created by the first save.
func checkStorage(path string) CheckStatus {
	details := map[string]any{"path": path}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return CheckStatus{Status: "unhealthy", Message: "storage path is a directory", Details: details}
	case err == nil:
		details["size_bytes"] = info.Size()
		details["modified"] = info.ModTime().UTC().Format(time.RFC3339)
		return CheckStatus{Status: "healthy", Details: details}
	case !errors.Is(err, fs.ErrNotExist):
		return CheckStatus{Status: "unhealthy", Message: err.Error(), Details: details}
	}

	dir, err := os.Stat(filepath.Dir(path))
	switch {
	case err == nil && dir.IsDir():
		return CheckStatus{Status: "healthy", Message: "not written yet", Details: details}
	case err == nil:
		return CheckStatus{Status: "unhealthy", Message: "parent of storage path is not a directory", Details: details}
	case errors.Is(err, fs.ErrNotExist):
		return CheckStatus{Status: "degraded", Message: "directory is created on first write", Details: details}
	default:
		return CheckStatus{Status: "unhealthy", Message: err.Error(), Details: details}
	}
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Default().Error("alive: failed to write response", slog.Any("error", err))
	}
}
