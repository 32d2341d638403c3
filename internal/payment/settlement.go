package payment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielavega/shopfront-backend/pkg/config"
	"github.com/danielavega/shopfront-backend/pkg/enums"
	pkgerrors "github.com/danielavega/shopfront-backend/pkg/errors"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

// Trigger card numbers. Any card starting with one of these settles to the
// matching decline; everything else is approved.
const (
	triggerCardDeclined  = "4000000000000002"
	triggerCodeIncorrect = "4000000000000127"
	triggerCardExpired   = "4000000000000069"
)

// Result is a settlement outcome. Declines are data, not errors; the returned
// error is reserved for interruption of the settlement itself.
type Result struct {
	Approved bool                `json:"approved"`
	Reason   enums.DeclineReason `json:"reason,omitempty"`
	Message  string              `json:"message,omitempty"`
	Amount   decimal.Decimal     `json:"amount"`
}

// Settler simulates a payment processor: a fixed latency, then an outcome
// chosen by the card number's trigger prefix.
type Settler struct {
	cfg config.PaymentConfig
	m   *metrics.StorefrontMetrics
}

// NewSettler builds a mock settler. metrics may be nil.
func NewSettler(cfg config.PaymentConfig, m *metrics.StorefrontMetrics) *Settler {
	return &Settler{cfg: cfg, m: m}
}

// Settle charges the given amount after the simulated processing delay. The
// fields are assumed to have passed Validate; settlement only looks at the
// card number.
func (s *Settler) Settle(ctx context.Context, fields Fields, amount decimal.Decimal) (Result, error) {
	if err := sleepCtx(ctx, s.cfg.SettlementDelay); err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "settlement interrupted")
	}

	number := fields.StrippedCardNumber()
	var reason enums.DeclineReason
	switch {
	case strings.HasPrefix(number, triggerCardDeclined):
		reason = enums.DeclineCardDeclined
	case strings.HasPrefix(number, triggerCodeIncorrect):
		reason = enums.DeclineSecurityCodeIncorrect
	case strings.HasPrefix(number, triggerCardExpired):
		reason = enums.DeclineCardExpired
	default:
		return Result{Approved: true, Amount: amount}, nil
	}

	s.m.IncPaymentDecline(reason.String())
	return Result{
		Reason:  reason,
		Message: reason.Message(),
		Amount:  amount,
	}, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
