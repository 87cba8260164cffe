package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"ringside/pkg/auth"
	"ringside/pkg/database"
	"ringside/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvRingsideEnv             = "RINGSIDE_ENV"
	EnvRingsideShutdownTimeout = "RINGSIDE_SHUTDOWN_TIMEOUT"
	EnvRingsideVersion         = "RINGSIDE_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "RINGSIDE_DB_HOST",
	Port:            "RINGSIDE_DB_PORT",
	Name:            "RINGSIDE_DB_NAME",
	User:            "RINGSIDE_DB_USER",
	Password:        "RINGSIDE_DB_PASSWORD",
	SSLMode:         "RINGSIDE_DB_SSL_MODE",
	MaxOpenConns:    "RINGSIDE_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "RINGSIDE_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "RINGSIDE_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "RINGSIDE_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "RINGSIDE_STORAGE_CONTAINER_NAME",
	ConnectionString: "RINGSIDE_STORAGE_CONNECTION_STRING",
}

var authEnv = &auth.Env{
	Enabled:  "RINGSIDE_AUTH_ENABLED",
	Issuer:   "RINGSIDE_AUTH_ISSUER",
	Audience: "RINGSIDE_AUTH_AUDIENCE",
}

// Config is the root configuration for the Ringside service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	Storage         storage.Config    `toml:"storage"`
	API             APIConfig         `toml:"api"`
	Auth            auth.Config       `toml:"auth"`
	Eligibility     EligibilityConfig `toml:"eligibility"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the RINGSIDE_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvRingsideEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Auth.Merge(&overlay.Auth)
	c.Eligibility.Merge(&overlay.Eligibility)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Eligibility.Finalize(); err != nil {
		return fmt.Errorf("eligibility: %w", err)
	}
	return nil
}
func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvRingsideShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvRingsideVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvRingsideEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
