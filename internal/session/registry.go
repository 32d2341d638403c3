package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/pkg/config"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/logger"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

// Registry owns every live session. Sessions are created on first sight of an
// ID, refreshed on every access, and evicted by the janitor once idle past the
// TTL.
type Registry struct {
	cfg     config.SessionConfig
	idCfg   config.IdentityConfig
	jwtCfg  config.JWTConfig
	settler *payment.Settler
	log     *logger.Logger
	m       *metrics.StorefrontMetrics
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry builds an empty session registry. metrics may be nil.
func NewRegistry(cfg config.SessionConfig, idCfg config.IdentityConfig, jwtCfg config.JWTConfig, settler *payment.Settler, log *logger.Logger, m *metrics.StorefrontMetrics) (*Registry, error) {
	if settler == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "registry requires a settler")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "registry requires a logger")
	}
	return &Registry{
		cfg:      cfg,
		idCfg:    idCfg,
		jwtCfg:   jwtCfg,
		settler:  settler,
		log:      log,
		m:        m,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}, nil
}

// GetOrCreate returns the session for id, minting one on first sight. An empty
// id gets a fresh session under a generated ID; callers should echo the ID
// back to the client.
func (r *Registry) GetOrCreate(id string) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := r.now()

	r.mu.Lock()
	if existing, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		existing.touch(now)
		return existing, nil
	}

	created, err := newSession(id, r.idCfg, r.jwtCfg, r.settler, r.m, now)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.sessions[id] = created
	count := len(r.sessions)
	r.mu.Unlock()

	r.m.SetActiveSessions(count)
	return created, nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle drops every session idle past the TTL and returns how many went.
func (r *Registry) EvictIdle() int {
	now := r.now()

	r.mu.Lock()
	var evicted []string
	for id, s := range r.sessions {
		if s.idleSince(now) > r.cfg.TTL {
			evicted = append(evicted, id)
		}
	}
	for _, id := range evicted {
		delete(r.sessions, id)
	}
	count := len(r.sessions)
	r.mu.Unlock()

	r.m.SetActiveSessions(count)
	return len(evicted)
}

// RunJanitor sweeps idle sessions on the configured interval until ctx is
// done. Meant to run in its own goroutine.
func (r *Registry) RunJanitor(ctx context.Context) {
	interval := r.cfg.JanitorInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictIdle(); n > 0 {
				sweepCtx := r.log.WithFields(ctx, map[string]any{
					"evicted":   n,
					"remaining": r.Len(),
				})
				r.log.Info(sweepCtx, "evicted idle sessions")
			}
		}
	}
}
