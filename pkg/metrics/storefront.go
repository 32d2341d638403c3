package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records counters for the demo's purchase and auth funnels.
type StorefrontMetrics struct {
	logins         *prometheus.CounterVec
	ordersPlaced   prometheus.Counter
	declines       *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Login and register attempts by outcome.",
	}, []string{"operation", "outcome"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders that settled successfully.",
	})
	declines := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_declines_total",
		Help: "Mock settlements declined, by reason.",
	}, []string{"reason"})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions",
		Help: "Sessions currently held in the registry.",
	})
	reg.MustRegister(logins, ordersPlaced, declines, activeSessions)
	return &StorefrontMetrics{
		logins:         logins,
		ordersPlaced:   ordersPlaced,
		declines:       declines,
		activeSessions: activeSessions,
	}
}

// IncAuthAttempt counts a login or register attempt with its outcome.
func (m *StorefrontMetrics) IncAuthAttempt(operation, outcome string) {
	if m == nil || m.logins == nil {
		return
	}
	m.logins.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// IncOrderPlaced counts a successfully settled order.
func (m *StorefrontMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// IncPaymentDecline counts a declined settlement by reason.
func (m *StorefrontMetrics) IncPaymentDecline(reason string) {
	if m == nil || m.declines == nil {
		return
	}
	m.declines.WithLabelValues(normalizeLabel(reason)).Inc()
}

// SetActiveSessions records the registry's current size.
func (m *StorefrontMetrics) SetActiveSessions(n int) {
	if m == nil || m.activeSessions == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
