// Package tracing provides OpenTelemetry tracing integration.
//
// It exposes the service tracer, an SDK provider constructor, span helpers
// used by the feed store, and an HTTP middleware that starts one server span
// per request.
//
// Example usage:
//
//	import "feedstore/internal/observability/tracing"
//
//	func main() {
//	    tp := tracing.NewProvider("feedstore", 0.1)
//	    tracing.Init(tp)
//	    defer func() { _ = tp.Shutdown(context.Background()) }()
//	}
//
//	func createFeed(ctx context.Context) (err error) {
//	    ctx, span := tracing.StartSpan(ctx, "feed.create")
//	    defer func() { tracing.EndSpan(span, err) }()
//	    // ...
//	}
package tracing
