package slo

import (
	"context"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"feedstore/internal/handler/http/responsewriter"
)

// maxSamples bounds memory when traffic is high; the oldest samples go first.
const maxSamples = 10000

type sample struct {
	at      time.Time
	seconds float64
	failed  bool
}

// Snapshot holds the indicators computed over the current window.
type Snapshot struct {
	Requests     int
	Availability float64
	ErrorRate    float64
	LatencyP95   float64
	LatencyP99   float64
}

// Met reports whether every indicator is within its target.
func (s Snapshot) Met() bool {
	return s.Availability*100 >= AvailabilitySLO &&
		s.ErrorRate <= ErrorRateSLO &&
		s.LatencyP95 <= LatencyP95SLO &&
		s.LatencyP99 <= LatencyP99SLO
}

// Tracker keeps request outcomes for a sliding window.
type Tracker struct {
	mu      sync.Mutex
	window  time.Duration
	samples []sample
	now     func() time.Time
}

func NewTracker(window time.Duration) *Tracker {
	return &Tracker{window: window, now: time.Now}
}

// Observe records one finished request. Any 5xx status counts as a failure.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.samples) >= maxSamples {
		t.samples = t.samples[1:]
	}
	t.samples = append(t.samples, sample{
		at:      t.now(),
		seconds: d.Seconds(),
		failed:  status >= http.StatusInternalServerError,
	})
}

// Snapshot drops samples older than the window and computes the indicators.
// An empty window reports full availability and zero latency.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-t.window)
	i := sort.Search(len(t.samples), func(i int) bool { return !t.samples[i].at.Before(cutoff) })
	t.samples = t.samples[i:]

	n := len(t.samples)
	if n == 0 {
		return Snapshot{Availability: 1}
	}

	failed := 0
	latencies := make([]float64, n)
	for i, s := range t.samples {
		if s.failed {
			failed++
		}
		latencies[i] = s.seconds
	}
	sort.Float64s(latencies)

	errRate := float64(failed) / float64(n)
	return Snapshot{
		Requests:     n,
		Availability: 1 - errRate,
		ErrorRate:    errRate,
		LatencyP95:   percentile(latencies, 0.95),
		LatencyP99:   percentile(latencies, 0.99),
	}
}

// Refresh computes a snapshot and publishes it to the gauges.
func (t *Tracker) Refresh() Snapshot {
	s := t.Snapshot()
	publish(s)
	return s
}

// Run refreshes the gauges every interval until ctx is done.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Refresh()
		}
	}
}

// Middleware observes every request passing through next.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)
		t.Observe(rw.StatusCode(), time.Since(start))
	})
}

// percentile uses the nearest-rank method on sorted values.
func percentile(sorted []float64, p float64) float64 {
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
