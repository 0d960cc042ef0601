package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartRateLimitCleanup(t *testing.T) {
	rl := NewRateLimiter(10)
	handler := rl.Limit(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), searchFrom("10.0.0.1"))
	handler.ServeHTTP(httptest.NewRecorder(), searchFrom("10.0.0.2"))
	assert.Equal(t, 2, rl.Clients())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		StartRateLimitCleanup(ctx, rl, 5*time.Millisecond, time.Nanosecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return rl.Clients() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancel")
	}
}
