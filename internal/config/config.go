// Package config loads service configuration from an optional .env file
// and MENTORA_-prefixed environment variables. LLM provider settings are
// loaded separately by internal/llm.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAddr is the HTTP listen address when none is configured.
const DefaultAddr = ":8080"

const dbFileName = "mentora.db"

// Config is the service-level configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DBPath is the SQLite database file. Its parent directory exists
	// once Load returns.
	DBPath string

	// SessionTTL is the login session lifetime. Zero means the auth
	// package default.
	SessionTTL time.Duration
}

// Load reads .env when present, then the environment:
//
//	MENTORA_ADDR         HTTP listen address (default :8080)
//	MENTORA_DB           database file path (default under os.UserConfigDir()/mentora)
//	MENTORA_SESSION_TTL  session lifetime as a Go duration, e.g. 72h
func Load() (*Config, error) {
	// Best effort: a real environment variable always wins over .env.
	_ = godotenv.Load()

	cfg := &Config{
		Addr: getEnvOrDefault("MENTORA_ADDR", DefaultAddr),
	}

	if ttl := os.Getenv("MENTORA_SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("parse MENTORA_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}

	cfg.DBPath = os.Getenv("MENTORA_DB")
	if cfg.DBPath == "" {
		p, err := defaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}
	if err := EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return cfg, nil
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// DefaultDBPath returns the database path under the user config dir,
// creating the directory on the way.
func DefaultDBPath() (string, error) {
	p, err := defaultDBPath()
	if err != nil {
		return "", err
	}
	return p, EnsureDir(p)
}

func defaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "mentora", dbFileName), nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
