package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Zero(t, wrapped.BytesWritten())
	assert.False(t, wrapped.HeaderWritten())
}

func TestWrap_ReturnsExistingWrapper(t *testing.T) {
	inner := Wrap(httptest.NewRecorder())
	outer := Wrap(inner)

	require.Same(t, inner, outer)
	outer.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, inner.StatusCode())
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusCreated, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(code)

			assert.Equal(t, code, wrapped.StatusCode())
			assert.Equal(t, code, rec.Code)
			assert.True(t, wrapped.HeaderWritten())
		})
	}
}

func TestResponseWriter_WriteHeader_FirstCallWins(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusBadRequest)
	wrapped.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusBadRequest, wrapped.StatusCode())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte(`<?xml version="1.0"?>`))
	require.NoError(t, err)
	assert.Equal(t, 21, n)
	_, err = wrapped.Write([]byte("<rss></rss>"))
	require.NoError(t, err)

	assert.True(t, wrapped.HeaderWritten(), "Write implies 200")
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 32, wrapped.BytesWritten())
	assert.Equal(t, `<?xml version="1.0"?><rss></rss>`, rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, wrapped.HeaderWritten())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Same(t, rec, Wrap(rec).Unwrap())
}

func TestResponseWriter_InHandler(t *testing.T) {
	var captured *ResponseWriter
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Feed created successfully"}`))
	})

	rec := httptest.NewRecorder()
	captured = Wrap(rec)
	h.ServeHTTP(captured, httptest.NewRequest(http.MethodPost, "/feeds", nil))

	assert.Equal(t, http.StatusCreated, captured.StatusCode())
	assert.Equal(t, len(`{"message":"Feed created successfully"}`), captured.BytesWritten())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
