package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port" env:"SERVER_PORT, overwrite"`
	Host string `yaml:"host" env:"SERVER_HOST, overwrite"`
}

// DatabaseConfig holds database configuration. Driver is "postgres" or
// "sqlite"; Path is only used by sqlite.
type DatabaseConfig struct {
	Driver   string `yaml:"driver" env:"DB_DRIVER, overwrite"`
	Host     string `yaml:"host" env:"DB_HOST, overwrite"`
	Port     int    `yaml:"port" env:"DB_PORT, overwrite"`
	User     string `yaml:"user" env:"DB_USER, overwrite"`
	Password string `yaml:"password" env:"DB_PASSWORD, overwrite"`
	DBName   string `yaml:"dbname" env:"DB_NAME, overwrite"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE, overwrite"`
	Path     string `yaml:"path" env:"DB_PATH, overwrite"`
}

// SessionConfig holds the session cookie settings
type SessionConfig struct {
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME, overwrite"`
	MaxAge     time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE, overwrite"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL, overwrite"`
}

// MetricsConfig holds Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled *bool  `yaml:"enabled" env:"METRICS_ENABLED, overwrite, noinit"`
	Path    string `yaml:"path" env:"METRICS_PATH, overwrite"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads configuration from a YAML file, then applies environment
// overrides (including a .env file in the working directory) and defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3333
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverPostgres
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.Path == "" {
		c.Database.Path = "daily-diet.db"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "sessionId"
	}
	if c.Session.MaxAge == 0 {
		c.Session.MaxAge = 7 * 24 * time.Hour
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Metrics.Enabled == nil {
		enabled := true
		c.Metrics.Enabled = &enabled
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks settings that have no usable default
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Session.MaxAge < 0 {
		return fmt.Errorf("session max_age must not be negative")
	}
	return nil
}

// IsEnabled reports whether /metrics is served
func (c *MetricsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
