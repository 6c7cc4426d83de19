// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvProduction enables the hardened cookie policy (Secure, SameSite=None).
	EnvProduction = "production"
	// EnvDevelopment is the default environment.
	EnvDevelopment = "development"

	devSecretKey = "dev-secret-key"
)

// Config holds all runtime settings. Values come from environment variables,
// with a .env file loaded first if present.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// DBPath is the SQLite database file path.
	DBPath string

	// SecretKey signs session tokens. Rotating it invalidates every
	// outstanding session.
	SecretKey string

	// Environment is "development" or "production".
	Environment string

	// FrontendURL is the allowed CORS origin for credentialed requests.
	FrontendURL string
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "./data/trips.db"),
		SecretKey:   getEnv("SECRET_KEY", devSecretKey),
		Environment: getEnv("ENVIRONMENT", EnvDevelopment),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

// Validate rejects configurations that must never reach production.
func (c *Config) Validate() error {
	if c.Environment != EnvProduction && c.Environment != EnvDevelopment {
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.IsProduction() && c.SecretKey == devSecretKey {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	return nil
}

// IsProduction reports whether the hardened cookie policy applies.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
