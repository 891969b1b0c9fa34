package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	Environment   string
	DatabaseURL   string
	JWTSigningKey string
	ConsentTTL    time.Duration
	AuditBuffer   int
}

// Defaults applied when the environment does not override them.
const (
	defaultAddr        = ":8080"
	defaultConsentTTL  = 365 * 24 * time.Hour // 1 year
	defaultAuditBuffer = 256
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CARESIGNAL_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	env := os.Getenv("CARESIGNAL_ENV")
	if env == "" {
		env = "development"
	}

	consentTTL := defaultConsentTTL
	if raw := os.Getenv("CONSENT_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			consentTTL = d
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:          addr,
		Environment:   env,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSigningKey: jwtSigningKey,
		ConsentTTL:    consentTTL,
		AuditBuffer:   defaultAuditBuffer,
	}
}
