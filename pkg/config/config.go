package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Identity  IdentityConfig
	Payment   PaymentConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	JWT       JWTConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPFRONT_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPFRONT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHOPFRONT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPFRONT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// IdentityConfig tunes the mock identity service. The privileged pair mirrors the
// demo's canned admin credential and is not a real secret.
type IdentityConfig struct {
	SimulatedDelay time.Duration `envconfig:"SHOPFRONT_IDENTITY_SIMULATED_DELAY" default:"1500ms"`
	AdminEmail     string        `envconfig:"SHOPFRONT_IDENTITY_ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword  string        `envconfig:"SHOPFRONT_IDENTITY_ADMIN_PASSWORD" default:"admin123"`
}

type PaymentConfig struct {
	SettlementDelay time.Duration `envconfig:"SHOPFRONT_PAYMENT_SETTLEMENT_DELAY" default:"2500ms"`
}

type SessionConfig struct {
	TTL             time.Duration `envconfig:"SHOPFRONT_SESSION_TTL" default:"30m"`
	JanitorInterval time.Duration `envconfig:"SHOPFRONT_SESSION_JANITOR_INTERVAL" default:"5m"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"SHOPFRONT_RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"SHOPFRONT_RATE_LIMIT_BURST" default:"40"`
}

// JWTConfig configures the demo token minted on mock logins. The default secret is
// intentional: tokens exist for inspection in the demo UI, not for security.
type JWTConfig struct {
	Secret            string `envconfig:"SHOPFRONT_JWT_SECRET" default:"shopfront-demo-secret"`
	Issuer            string `envconfig:"SHOPFRONT_JWT_ISSUER" default:"shopfront"`
	ExpirationMinutes int    `envconfig:"SHOPFRONT_JWT_EXPIRATION_MINUTES" default:"60"`
}

// Expiration returns the token lifetime configured in minutes.
func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}
