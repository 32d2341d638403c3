package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielavega/shopfront-backend/api/middleware"
	"github.com/danielavega/shopfront-backend/internal/catalog"
	"github.com/danielavega/shopfront-backend/internal/payment"
	"github.com/danielavega/shopfront-backend/internal/session"
	"github.com/danielavega/shopfront-backend/pkg/config"
	"github.com/danielavega/shopfront-backend/pkg/logger"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	reg, err := session.NewRegistry(
		config.SessionConfig{TTL: time.Hour, JanitorInterval: time.Minute},
		config.IdentityConfig{AdminEmail: "admin@example.com", AdminPassword: "admin123"},
		config.JWTConfig{Secret: "unit-test-secret", Issuer: "shopfront-test", ExpirationMinutes: 60},
		payment.NewSettler(config.PaymentConfig{}, nil),
		logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		nil,
	)
	if err != nil {
		t.Fatalf("registry failed to build: %v", err)
	}
	s, err := reg.GetOrCreate("test-session")
	if err != nil {
		t.Fatalf("session failed to build: %v", err)
	}
	return s
}

func newDemoCatalog(t *testing.T) catalog.Service {
	t.Helper()

	store, err := catalog.NewDemoStore()
	if err != nil {
		t.Fatalf("demo store failed to load: %v", err)
	}
	svc, err := catalog.NewService(store)
	if err != nil {
		t.Fatalf("catalog service failed to build: %v", err)
	}
	return svc
}

func decodeBody(rec *httptest.ResponseRecorder, dest any) error {
	return json.NewDecoder(rec.Body).Decode(dest)
}

func serveWithSession(s *session.Session, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req = req.WithContext(middleware.WithSession(req.Context(), s))
	handler.ServeHTTP(rec, req)
	return rec
}
