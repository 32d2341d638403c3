package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStorefrontMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefrontMetrics(reg)

	m.IncAuthAttempt("login", "success")
	m.IncAuthAttempt("login", "success")
	m.IncAuthAttempt("register", "")
	m.IncOrderPlaced()
	m.IncPaymentDecline("card_declined")
	m.SetActiveSessions(3)

	if got := testutil.ToFloat64(m.logins.WithLabelValues("login", "success")); got != 2 {
		t.Fatalf("expected 2 login successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.logins.WithLabelValues("register", "unknown")); got != 1 {
		t.Fatalf("expected empty outcome to normalize to unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.ordersPlaced); got != 1 {
		t.Fatalf("expected 1 order placed, got %v", got)
	}
	if got := testutil.ToFloat64(m.declines.WithLabelValues("card_declined")); got != 1 {
		t.Fatalf("expected 1 decline, got %v", got)
	}
	if got := testutil.ToFloat64(m.activeSessions); got != 3 {
		t.Fatalf("expected 3 active sessions, got %v", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	var m *StorefrontMetrics
	m.IncAuthAttempt("login", "success")
	m.IncOrderPlaced()
	m.IncPaymentDecline("card_expired")
	m.SetActiveSessions(1)

	unregistered := NewStorefrontMetrics(nil)
	unregistered.IncOrderPlaced()
}
