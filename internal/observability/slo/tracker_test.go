package slo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(window time.Duration) (*Tracker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)}
	tr := NewTracker(window)
	tr.now = clock.Now
	return tr, clock
}

func TestSnapshot_Empty(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)

	s := tr.Snapshot()
	assert.Equal(t, Snapshot{Availability: 1}, s)
	assert.True(t, s.Met())
}

func TestSnapshot_Ratios(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)

	for i := 0; i < 8; i++ {
		tr.Observe(http.StatusOK, 10*time.Millisecond)
	}
	tr.Observe(http.StatusNotFound, 10*time.Millisecond)
	tr.Observe(http.StatusInternalServerError, 10*time.Millisecond)

	s := tr.Snapshot()
	assert.Equal(t, 10, s.Requests)
	assert.InDelta(t, 0.9, s.Availability, 1e-9)
	assert.InDelta(t, 0.1, s.ErrorRate, 1e-9)
	assert.False(t, s.Met())
}

func TestSnapshot_Percentiles(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)

	// 1ms .. 100ms
	for i := 100; i >= 1; i-- {
		tr.Observe(http.StatusOK, time.Duration(i)*time.Millisecond)
	}

	s := tr.Snapshot()
	assert.InDelta(t, 0.095, s.LatencyP95, 1e-9)
	assert.InDelta(t, 0.099, s.LatencyP99, 1e-9)
	assert.True(t, s.Met())
}

func TestSnapshot_DropsSamplesOutsideWindow(t *testing.T) {
	tr, clock := newTestTracker(time.Minute)

	tr.Observe(http.StatusInternalServerError, time.Second)
	clock.Advance(45 * time.Second)
	tr.Observe(http.StatusOK, time.Millisecond)
	clock.Advance(30 * time.Second)

	s := tr.Snapshot()
	assert.Equal(t, 1, s.Requests)
	assert.Equal(t, 1.0, s.Availability)
	assert.InDelta(t, 0.001, s.LatencyP99, 1e-9)
}

func TestObserve_CapsSamples(t *testing.T) {
	tr, _ := newTestTracker(time.Hour)

	for i := 0; i < maxSamples+5; i++ {
		tr.Observe(http.StatusOK, time.Millisecond)
	}
	assert.Equal(t, maxSamples, tr.Snapshot().Requests)
}

func TestRefresh_PublishesGauges(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)
	tr.Observe(http.StatusOK, 20*time.Millisecond)
	tr.Observe(http.StatusServiceUnavailable, 40*time.Millisecond)

	tr.Refresh()

	assert.InDelta(t, 0.5, testutil.ToFloat64(SLOAvailability), 1e-9)
	assert.InDelta(t, 0.5, testutil.ToFloat64(SLOErrorRate), 1e-9)
	assert.InDelta(t, 0.04, testutil.ToFloat64(SLOLatencyP95), 1e-9)
	assert.InDelta(t, 0.04, testutil.ToFloat64(SLOLatencyP99), 1e-9)
}

func TestMiddleware_ObservesStatus(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)
	h := tr.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, path := range []string{"/feeds", "/broken", "/status"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	s := tr.Snapshot()
	require.Equal(t, 3, s.Requests)
	assert.InDelta(t, 1.0/3.0, s.ErrorRate, 1e-9)
}

func TestRun_StopsOnCancel(t *testing.T) {
	tr, _ := newTestTracker(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		tr.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
