package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielavega/shopfront-backend/pkg/config"
	"github.com/danielavega/shopfront-backend/pkg/enums"
)

func testSettler(delay time.Duration) *Settler {
	return NewSettler(config.PaymentConfig{SettlementDelay: delay}, nil)
}

func TestSettleApprovesOrdinaryCards(t *testing.T) {
	t.Parallel()

	fields := validFields()
	amount := decimal.RequireFromString("107.99")

	result, err := testSettler(0).Settle(context.Background(), fields, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Approved {
		t.Fatalf("expected approval, got %+v", result)
	}
	if !result.Amount.Equal(amount) {
		t.Fatalf("amount mismatch: %s", result.Amount)
	}
}

func TestSettleTriggerPrefixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		card   string
		reason enums.DeclineReason
	}{
		{"declined", "4000 0000 0000 0002", enums.DeclineCardDeclined},
		{"badSecurityCode", "4000 0000 0000 0127", enums.DeclineSecurityCodeIncorrect},
		{"expired", "4000 0000 0000 0069", enums.DeclineCardExpired},
		// The match is on the prefix, not the whole number.
		{"declinedLonger", "4000000000000002123", enums.DeclineCardDeclined},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := validFields()
			fields.CardNumber = tc.card

			result, err := testSettler(0).Settle(context.Background(), fields, decimal.NewFromInt(50))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Approved {
				t.Fatalf("expected decline for %s", tc.card)
			}
			if result.Reason != tc.reason {
				t.Fatalf("got reason %s, want %s", result.Reason, tc.reason)
			}
			if result.Message != tc.reason.Message() {
				t.Fatalf("got message %q, want %q", result.Message, tc.reason.Message())
			}
		})
	}
}

func TestSettleHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testSettler(time.Minute).Settle(ctx, validFields(), decimal.NewFromInt(50))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
