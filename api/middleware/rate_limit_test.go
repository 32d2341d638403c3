package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielavega/shopfront-backend/pkg/config"
)

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	t.Parallel()

	handler := RateLimit(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	status := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := status(); got != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", got)
	}
	if got := status(); got != http.StatusOK {
		t.Fatalf("second request: expected 200, got %d", got)
	}
	if got := status(); got != http.StatusTooManyRequests {
		t.Fatalf("third request: expected 429, got %d", got)
	}
}

func TestRateLimitIsolatesKeys(t *testing.T) {
	t.Parallel()

	handler := RateLimit(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}, nil)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if got := status("10.0.0.1:1234"); got != http.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
	if got := status("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", got)
	}
	if got := status("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("other client must not be throttled, got %d", got)
	}
}

func TestLimiterPoolPrunesIdleClients(t *testing.T) {
	t.Parallel()

	pool := newLimiterPool(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	pool.now = func() time.Time { return current }

	for i := 0; i < limiterPrunePoint; i++ {
		pool.get(fmt.Sprintf("client-%d", i))
	}
	if len(pool.clients) != limiterPrunePoint {
		t.Fatalf("expected %d limiters, got %d", limiterPrunePoint, len(pool.clients))
	}

	// A recently active client survives the sweep; everyone else is idle.
	current = base.Add(limiterIdleWindow)
	pool.get("client-0")

	current = base.Add(limiterIdleWindow + time.Minute)
	pool.get("late-arrival")

	if len(pool.clients) != 2 {
		t.Fatalf("expected only the active and new clients, pool holds %d", len(pool.clients))
	}
	if _, ok := pool.clients["client-0"]; !ok {
		t.Fatalf("active client was pruned")
	}
	if _, ok := pool.clients["late-arrival"]; !ok {
		t.Fatalf("new client missing after prune")
	}
}
