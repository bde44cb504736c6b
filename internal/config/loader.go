package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const maxPort = 65535

// envKeys maps the recognised environment variables to koanf keys.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"APP_VERSION": "version",
	"ENVIRONMENT": "environment",
	"PORT":        "port",
	"LOG_LEVEL":   "log_level",
}

// Load builds a Config by layering environment variables over defaults.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. env (APP_VERSION, ENVIRONMENT, PORT, LOG_LEVEL)
//
// Variables that are set but empty are skipped so the default holds.
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	envProvider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		name, ok := envKeys[key]
		if !ok || strings.TrimSpace(value) == "" {
			return "", nil
		}
		return name, strings.TrimSpace(value)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot reject on type alone.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("%w: version must not be empty", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > maxPort {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	return nil
}
