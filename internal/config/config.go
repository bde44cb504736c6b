// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers environment variables over the defaults.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"strconv"
)

// Default values used when the matching environment variable is unset.
const (
	DefaultVersion     = "1.0.0"
	DefaultEnvironment = "development"
	DefaultPort        = 5000
	DefaultLogLevel    = "info"
)

// Config contains process configuration. It is resolved once at start and
// handed to the components that need it; nothing mutates it afterwards.
type Config struct {
	// Version is reported by the home and health endpoints (APP_VERSION).
	Version string `koanf:"version"`

	// Environment names the deployment, e.g. development or production (ENVIRONMENT).
	Environment string `koanf:"environment"`

	// Port is the TCP port the listener binds on all interfaces (PORT).
	Port int `koanf:"port"`

	// LogLevel controls verbosity: debug, info, warn, error (LOG_LEVEL).
	LogLevel string `koanf:"log_level"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		Version:     DefaultVersion,
		Environment: DefaultEnvironment,
		Port:        DefaultPort,
		LogLevel:    DefaultLogLevel,
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsProduction reports whether the service runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
