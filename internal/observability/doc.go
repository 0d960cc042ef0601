// Package observability provides the observability infrastructure of the
// feed service: structured logging, Prometheus metrics and OpenTelemetry tracing.
//
// Subpackages:
//   - logging: slog logger construction, optional rotating file sink, context propagation
//   - metrics: feed store metrics
//   - tracing: OpenTelemetry tracer and HTTP middleware
//
// Example usage:
//
//	import (
//	    "feedstore/internal/observability/logging"
//	    "feedstore/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger, closer := logging.New(logging.OptionsFromEnv(), os.Stdout)
//	    defer closer.Close()
//	    logger.Info("application started")
//
//	    metrics.UpdateCollectionSize(3, 42)
//	}
package observability
