package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/danielavega/shopfront-backend/api/responses"
	"github.com/danielavega/shopfront-backend/pkg/config"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

const (
	// Idle limiters are pruned once the pool reaches this many clients.
	limiterPrunePoint = 1024
	limiterIdleWindow = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterPool holds one token bucket per client key and drops buckets for
// clients that have gone idle, so the pool does not accumulate an entry for
// every session the registry has since evicted.
type limiterPool struct {
	cfg config.RateLimitConfig
	now func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func newLimiterPool(cfg config.RateLimitConfig) *limiterPool {
	return &limiterPool{
		cfg:     cfg,
		now:     time.Now,
		clients: map[string]*clientLimiter{},
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	ts := p.now()
	if c, ok := p.clients[key]; ok {
		c.lastSeen = ts
		return c.limiter
	}

	if len(p.clients) >= limiterPrunePoint {
		p.prune(ts)
	}

	c := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Limit(p.cfg.RequestsPerSecond), p.cfg.Burst),
		lastSeen: ts,
	}
	p.clients[key] = c
	return c.limiter
}

// prune drops limiters idle beyond the window. Caller holds the lock.
func (p *limiterPool) prune(ts time.Time) {
	for key, c := range p.clients {
		if ts.Sub(c.lastSeen) > limiterIdleWindow {
			delete(p.clients, key)
		}
	}
}

// RateLimit applies a per-session token bucket. It must run after the Session
// middleware; requests without a session fall back to a shared bucket keyed by
// remote address.
func RateLimit(cfg config.RateLimitConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	pool := newLimiterPool(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.RemoteAddr
			if s := SessionFromContext(r.Context()); s != nil {
				key = s.ID
			}

			if !pool.get(key).Allow() {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
