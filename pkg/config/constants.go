package config

const EnvPrefix = "shopfront"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "SHOPFRONT_APP_ENV"
	EnvPort       = "SHOPFRONT_APP_PORT"
	EnvLogLvl     = "SHOPFRONT_LOG_LEVEL"
	EnvIDDelay    = "SHOPFRONT_IDENTITY_SIMULATED_DELAY"
	EnvPmtDelay   = "SHOPFRONT_PAYMENT_SETTLEMENT_DELAY"
	EnvSessionTTL = "SHOPFRONT_SESSION_TTL"
)
