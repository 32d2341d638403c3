package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/internal/session"
	"github.com/danielavega/shopfront-backend/pkg/config"
	"github.com/danielavega/shopfront-backend/pkg/logger"
	"github.com/danielavega/shopfront-backend/pkg/metrics"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App:       config.AppConfig{Env: "development", Port: "8080"},
		Identity:  config.IdentityConfig{AdminEmail: "admin@example.com", AdminPassword: "admin123"},
		Payment:   config.PaymentConfig{},
		Session:   config.SessionConfig{TTL: time.Hour, JanitorInterval: time.Minute},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		JWT:       config.JWTConfig{Secret: "unit-test-secret", Issuer: "shopfront-test", ExpirationMinutes: 60},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	promRegistry := prometheus.NewRegistry()
	m := metrics.NewStorefrontMetrics(promRegistry)

	store, err := catalog.NewDemoStore()
	if err != nil {
		t.Fatalf("demo store failed to load: %v", err)
	}
	catalogService, err := catalog.NewService(store)
	if err != nil {
		t.Fatalf("catalog service failed to build: %v", err)
	}

	settler := payment.NewSettler(cfg.Payment, m)
	registry, err := session.NewRegistry(cfg.Session, cfg.Identity, cfg.JWT, settler, logg, m)
	if err != nil {
		t.Fatalf("registry failed to build: %v", err)
	}

	return NewRouter(cfg, logg, registry, catalogService, promRegistry)
}

func doJSON(t *testing.T, handler http.Handler, method, path, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session-Id", sessionID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthAndMetrics(t *testing.T) {
	t.Parallel()

	handler := testRouter(t)

	if rec := doJSON(t, handler, http.MethodGet, "/health/live", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("live: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(t, handler, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(t, handler, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if rec := doJSON(t, handler, http.MethodGet, "/api/public/ping", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", rec.Code)
	}
}

func TestRouterMintsSessionID(t *testing.T) {
	t.Parallel()

	handler := testRouter(t)
	rec := doJSON(t, handler, http.MethodGet, "/api/v1/cart/", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Session-Id") == "" {
		t.Fatalf("expected a minted session id header")
	}
}

func TestRouterFullPurchaseJourney(t *testing.T) {
	t.Parallel()

	handler := testRouter(t)
	sessionID := "journey-1"

	// Browse the catalog.
	rec := doJSON(t, handler, http.MethodGet, "/api/v1/catalog/products?category=Gaming", sessionID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("browse: expected 200, got %d", rec.Code)
	}

	// Log in and fill the cart.
	rec = doJSON(t, handler, http.MethodPost, "/api/v1/auth/login", sessionID,
		`{"email":"jane@example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", sessionID, `{"product_id":"5"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", rec.Code)
	}

	// Walk the checkout to review and place the order.
	if rec = doJSON(t, handler, http.MethodPost, "/api/v1/checkout/", sessionID, ""); rec.Code != http.StatusOK {
		t.Fatalf("begin: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	draft := `{
		"shipping": {"email":"jane@example.com","first_name":"Jane","last_name":"Shopper","address":"1 Main St","city":"Springfield","state":"CA","zip_code":"94103","country":"United States"},
		"payment": {"card_number":"4242 4242 4242 4242","expiry_date":"12/99","cvv":"123","name_on_card":"Jane Shopper","billing_zip":"94103"}
	}`
	if rec = doJSON(t, handler, http.MethodPut, "/api/v1/checkout/draft", sessionID, draft); rec.Code != http.StatusOK {
		t.Fatalf("draft: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	doJSON(t, handler, http.MethodPost, "/api/v1/checkout/advance", sessionID, "")
	doJSON(t, handler, http.MethodPost, "/api/v1/checkout/advance", sessionID, "")

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/checkout/place-order", sessionID, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data struct {
			ID     string `json:"id"`
			Totals struct {
				Subtotal string `json:"subtotal"`
				Total    string `json:"total"`
			} `json:"totals"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	if envelope.Data.ID == "" {
		t.Fatalf("order id missing")
	}

	// The cart is empty after the purchase.
	rec = doJSON(t, handler, http.MethodGet, "/api/v1/cart/", sessionID, "")
	var cartEnvelope struct {
		Data struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&cartEnvelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cartEnvelope.Data.ItemCount != 0 {
		t.Fatalf("cart should be empty after purchase, got %d", cartEnvelope.Data.ItemCount)
	}
}

func TestRouterSessionsDoNotShareCarts(t *testing.T) {
	t.Parallel()

	handler := testRouter(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/cart/items", "client-a", `{"product_id":"1"}`)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/cart/", "client-b", "")
	var envelope struct {
		Data struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if envelope.Data.ItemCount != 0 {
		t.Fatalf("cart leaked across sessions")
	}
}
