// Package slo tracks service level indicators of the feed API over a sliding
// window and exposes them as Prometheus gauges.
package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Targets for the feed API.
const (
	// AvailabilitySLO is the target share of non-5xx responses, in percent.
	AvailabilitySLO = 99.9

	// LatencyP95SLO is the p95 latency target in seconds.
	LatencyP95SLO = 0.200

	// LatencyP99SLO is the p99 latency target in seconds.
	LatencyP99SLO = 0.500

	// ErrorRateSLO is the maximum share of 5xx responses.
	ErrorRateSLO = 0.001
)

// Gauges refreshed by Tracker.Refresh.
var (
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Share of non-5xx responses in the SLO window (0-1), target: 0.999",
		},
	)

	SLOLatencyP95 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p95_seconds",
			Help: "p95 request latency in the SLO window, target: 0.200",
		},
	)

	SLOLatencyP99 = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_latency_p99_seconds",
			Help: "p99 request latency in the SLO window, target: 0.500",
		},
	)

	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Share of 5xx responses in the SLO window (0-1), target: 0.001",
		},
	)
)

// publish copies a snapshot into the gauges.
func publish(s Snapshot) {
	SLOAvailability.Set(s.Availability)
	SLOErrorRate.Set(s.ErrorRate)
	SLOLatencyP95.Set(s.LatencyP95)
	SLOLatencyP99.Set(s.LatencyP99)
}
