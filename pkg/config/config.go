package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for leonardo-backend.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values. Secrets (the API key, the
// database password) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	// Profile selects the active deployment profile ("dev" or "aws").
	// It only affects the server URLs advertised in the OpenAPI document.
	Profile string `yaml:"profile" env:"PROFILE" env-default:"dev"`
	Version string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// API authentication configuration
	API APIConfig `yaml:"api"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"leonardo"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"leonardo_backend"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// APIConfig holds API key authentication and rate-limit settings.
type APIConfig struct {
	// Key is the shared secret expected in the X-API-Key header.
	// Validated at load time; startup fails on a weak or missing key.
	Key string `yaml:"-" env:"API_KEY"` // Secret - not in YAML

	// SecurityEnabled disables the auth gate entirely when false.
	// Development only; every endpoint becomes public.
	SecurityEnabled bool `yaml:"security_enabled" env:"API_SECURITY_ENABLED" env-default:"true"`

	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig tunes the failed-authentication log suppression.
type RateLimitConfig struct {
	MaxAttempts      int   `yaml:"max_attempts" env:"API_RATE_LIMIT_MAX_ATTEMPTS" env-default:"3"`
	WindowMs         int64 `yaml:"window_ms" env:"API_RATE_LIMIT_WINDOW_MS" env-default:"60000"`
	LogSuppressionMs int64 `yaml:"log_suppression_ms" env:"API_RATE_LIMIT_LOG_SUPPRESSION_MS" env-default:"10000"`
}

// ConnectionString builds a pgx connection string from the database settings.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// Load reads configuration from config.yaml with environment variable
// overrides and validates it. The version parameter is injected at build time.
// A missing config.yaml is not an error; configuration then comes entirely
// from the environment.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.API.SecurityEnabled {
		if err := ValidateAPIKey(cfg.API.Key); err != nil {
			return nil, fmt.Errorf("invalid API key configuration: %w", err)
		}
	}

	return cfg, nil
}

// weakTokens are secrets nobody should ship. A key consisting solely of
// repetitions of one of these tokens is rejected.
var weakTokens = []string{
	"test",
	"demo",
	"default",
	"password",
	"1234567890",
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
}

// ValidateAPIKey enforces the minimum strength rules for the shared secret.
// Failing any rule is a fatal startup error.
func ValidateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("API key cannot be null or empty")
	}
	if len(key) < 32 {
		return fmt.Errorf("API key must be at least 32 characters long")
	}
	if isWeakKey(key) {
		return fmt.Errorf("API key appears to be weak or insecure")
	}
	return nil
}

func isWeakKey(key string) bool {
	for _, token := range weakTokens {
		if strings.ReplaceAll(key, token, "") == "" {
			return true
		}
	}

	alpha, numeric, alnum := true, true, true
	for _, c := range key {
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		if !isLetter {
			alpha = false
		}
		if !isDigit {
			numeric = false
		}
		if !isLetter && !isDigit {
			alnum = false
		}
	}
	if alpha || numeric {
		return true
	}

	// Alphanumeric-only keys carry less entropy per character; require
	// extra length before accepting one.
	return alnum && len(key) < 64
}
