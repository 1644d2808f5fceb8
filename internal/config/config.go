// Package config loads process configuration from the environment, once at
// startup. Components receive the resulting Config explicitly; nothing reads
// ambient global state after Load returns.
package config

import (
	"errors"
	"os"
)

// Config holds the process-wide configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// DBPath is the SQLite database file path.
	DBPath string

	// StaticDir is the directory the SPA frontend is served from.
	// Empty disables static serving.
	StaticDir string

	// JWTSecret signs and verifies bearer tokens. Required.
	JWTSecret string
}

// ErrMissingSecret is returned when JWT_SECRET is absent. Starting without a
// signing key would make every issued token unverifiable, so this is fatal.
var ErrMissingSecret = errors.New("JWT_SECRET environment variable is required")

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		DBPath:    getEnv("DB_PATH", "./data/roomiesplit.db"),
		StaticDir: os.Getenv("STATIC_DIR"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
