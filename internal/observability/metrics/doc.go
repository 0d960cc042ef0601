// Package metrics provides Prometheus metrics for the feed store.
//
// This package centralizes the store-level metrics:
//   - collection size (feeds, entries)
//   - store operation outcomes
//   - retention evictions by rule
//   - persistence latency and failures
//
// HTTP request metrics live in the handler/http package next to the middleware
// that records them. All metrics here are registered with the Prometheus
// default registry and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "feedstore/internal/observability/metrics"
//
//	func save() {
//	    start := time.Now()
//	    err := repo.Save(ctx, c)
//	    metrics.RecordPersist(time.Since(start), err)
//	}
package metrics
