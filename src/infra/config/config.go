// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Storage backends selectable via APP_STORAGE_BACKEND.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP".
// Example: APP_STORAGE_PATH=book.json, APP_LOG_LEVEL=debug
type Config struct {
	// Storage selects and configures the snapshot store
	Storage StorageConfig

	// Database configuration (only used with the postgres backend)
	Database DatabaseConfig

	// Assistant configuration (REPL behavior)
	Assistant AssistantConfig

	// Logging configuration
	Log LogConfig
}

// StorageConfig selects where the address book snapshot lives.
type StorageConfig struct {
	// Backend is the snapshot store implementation: file or postgres (default: file)
	Backend string `envconfig:"STORAGE_BACKEND" default:"file"`

	// Path is the snapshot file location for the file backend (default: addressbook.json)
	Path string `envconfig:"STORAGE_PATH" default:"addressbook.json"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	// Host is the database host (default: localhost)
	Host string `envconfig:"DB_HOST" default:"localhost"`

	// Port is the database port (default: 5432)
	Port int `envconfig:"DB_PORT" default:"5432"`

	// User is the database user (default: postgres)
	User string `envconfig:"DB_USER" default:"postgres"`

	// Password is the database password
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`

	// Name is the database name (default: contactbook)
	Name string `envconfig:"DB_NAME" default:"contactbook"`

	// SSLMode is the SSL mode for the connection (default: disable)
	SSLMode string `envconfig:"DB_SSLMODE" default:"disable"`

	// MaxOpenConns is the maximum number of open connections (default: 4)
	MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"4"`

	// MaxIdleConns is the maximum number of idle connections (default: 2)
	MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`

	// ConnMaxLifetime is the maximum lifetime of a connection (default: 5m)
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

// AssistantConfig holds REPL behavior settings.
type AssistantConfig struct {
	// BirthdayWindowDays is the forward-looking window for the birthdays command (default: 7)
	BirthdayWindowDays int `envconfig:"BIRTHDAY_WINDOW_DAYS" default:"7"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: warn)
	Level string `envconfig:"LOG_LEVEL" default:"warn"`

	// Format is the log format: plain, json, text (default: plain)
	Format string `envconfig:"LOG_FORMAT" default:"plain"`
}

// DSN returns the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load reads configuration from environment variables.
// It returns an error if variables are present but invalid.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_STORAGE_PATH instead of APP_STORAGE_STORAGE_PATH
	if err := envconfig.Process("APP", &cfg.Storage); err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Assistant); err != nil {
		return nil, fmt.Errorf("failed to load assistant config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if cfg.Storage.Backend != BackendFile && cfg.Storage.Backend != BackendPostgres {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.Assistant.BirthdayWindowDays < 0 {
		return nil, fmt.Errorf("birthday window must not be negative, got %d", cfg.Assistant.BirthdayWindowDays)
	}

	return &cfg, nil
}

// MustLoad loads configuration and panics on error.
// Use this only in main.go during startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
