package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collection metrics reflect the in-memory state after each load or mutation
var (
	// FeedsTotal tracks the number of feeds in the collection
	FeedsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedstore_feeds",
			Help: "Number of feeds in the collection",
		},
	)

	// EntriesTotal tracks the number of entries across all feeds
	EntriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feedstore_entries",
			Help: "Number of entries across all feeds",
		},
	)
)

// Store metrics track operations on the feed store
var (
	// StoreOperationsTotal counts store operations by operation and result
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedstore_operations_total",
			Help: "Total number of feed store operations",
		},
		[]string{"operation", "result"},
	)

	// EntriesPrunedTotal counts entries evicted by the retention policy
	EntriesPrunedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedstore_entries_pruned_total",
			Help: "Total number of entries evicted by retention",
		},
		[]string{"rule"},
	)

	// PersistDuration measures how long a full collection save takes
	PersistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedstore_persist_duration_seconds",
			Help:    "Duration of collection saves in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	// PersistFailuresTotal counts failed saves
	PersistFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedstore_persist_failures_total",
			Help: "Total number of failed collection saves",
		},
	)
)
