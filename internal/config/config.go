// Package config loads the application configuration from the
// environment.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port            string        // Port the HTTP server listens on
	DatabaseFile    string        // Path of the SQLite database, ignored when DB_HOST selects postgresql
	JWTSecret       string        // Secret used to sign tokens
	AccessTokenTTL  time.Duration // Lifetime of access tokens
	RefreshTokenTTL time.Duration // Lifetime of refresh tokens
	CORSOrigins     []string      // Allowed CORS origin patterns, supports "*" wildcards
	EnablePprof     bool          // Serve profiling routes under /debug/pprof
}

var ErrJWTSecretMissing = errors.New("the JWT_SECRET environment variable must be set")

// Load reads the configuration from environment variables, with a .env
// file as fallback if one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            envDefault("PORT", "8080"),
		DatabaseFile:    envDefault("DB_FILE", "data/gorm.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  durationDefault("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL: durationDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		EnablePprof:     os.Getenv("ENABLE_PPROF") == "true",
	}

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		cfg.CORSOrigins = strings.Fields(origins)
	}

	if cfg.JWTSecret == "" {
		return nil, ErrJWTSecretMissing
	}

	return cfg, nil
}

func envDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func durationDefault(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return parsed
}
