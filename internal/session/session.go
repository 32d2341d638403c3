package session

import (
	"sync"
	"time"

	"github.com/danielavega/shopfront-backend/internal/cart"
	"github.com/danielavega/shopfront-backend/internal/checkout"
	"github.com/danielavega/shopfront-backend/internal/identity"
	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/pkg/config"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

// Session is the per-client state container: one cart, one identity, one
// checkout flow. All mutation goes through Do, which serializes handlers the
// way a single-threaded event loop would.
type Session struct {
	ID string

	Cart     *cart.Ledger
	Identity *identity.Service
	Checkout *checkout.Flow

	mu       sync.Mutex
	lastSeen time.Time
}

func newSession(id string, idCfg config.IdentityConfig, jwtCfg config.JWTConfig, settler *payment.Settler, m *metrics.StorefrontMetrics, now time.Time) (*Session, error) {
	ledger := cart.NewLedger()
	idSvc := identity.NewService(idCfg, jwtCfg, m)
	flow, err := checkout.NewFlow(ledger, idSvc, settler, m)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build session")
	}
	return &Session{
		ID:       id,
		Cart:     ledger,
		Identity: idSvc,
		Checkout: flow,
		lastSeen: now,
	}, nil
}

// Do runs fn while holding the session's mutex. Handlers touching the cart or
// checkout state must run inside Do.
func (s *Session) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
