package auth

import (
	"testing"
	"time"

	"github.com/danielavega/shopfront-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "unit-test-secret",
		Issuer:            "shopfront-test",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseDemoToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	signed, err := MintDemoToken(cfg, now, DemoTokenPayload{
		UserID: "1",
		Email:  "admin@example.com",
		Name:   "Admin User",
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := ParseDemoToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "1" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Name != "Admin User" {
		t.Fatalf("unexpected name %q", claims.Name)
	}
	if got := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time); got != 30*time.Minute {
		t.Fatalf("unexpected token lifetime %v", got)
	}
}

func TestMintDemoTokenRequiresConfig(t *testing.T) {
	now := time.Now()
	payload := DemoTokenPayload{UserID: "1"}

	if _, err := MintDemoToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 5}, now, payload); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := MintDemoToken(config.JWTConfig{Secret: "s", ExpirationMinutes: 5}, now, payload); err == nil {
		t.Fatal("expected error for missing issuer")
	}
	if _, err := MintDemoToken(config.JWTConfig{Secret: "s", Issuer: "x"}, now, payload); err == nil {
		t.Fatal("expected error for non-positive expiration")
	}
	if _, err := MintDemoToken(testJWTConfig(), now, DemoTokenPayload{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestParseDemoTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	signed, err := MintDemoToken(cfg, time.Now(), DemoTokenPayload{UserID: "2", Email: "x@y.com", Name: "X"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseDemoToken(other, signed); err == nil {
		t.Fatal("expected parse error for wrong secret")
	}
}
