package http

import (
	"context"
	"log/slog"
	"time"
)

// StartRateLimitCleanup periodically forgets clients idle for longer than idle
// so the limiter's memory stays bounded. It blocks until ctx is cancelled.
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("idle", idle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return
		case <-ticker.C:
			removed := limiter.Cleanup(idle)
			slog.Debug("rate limit cleanup completed",
				slog.Int("removed", removed),
				slog.Int("tracked", limiter.Clients()))
		}
	}
}
