package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application. Following 12-factor
// app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Webhook  WebhookConfig
	Pipeline PipelineConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port            string `env:"PORT" envDefault:"8080"`
	Host            string `env:"HOST" envDefault:"0.0.0.0"`
	ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"15"`
	WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
	ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
}

type AuthConfig struct {
	// Valid API keys for the webhook endpoints.
	APIKeys []string `env:"API_KEYS" envDefault:"apitest"`
}

type WebhookConfig struct {
	DedupeCapacity uint    `env:"WEBHOOK_DEDUPE_CAPACITY" envDefault:"100000"`
	DedupeFPRate   float64 `env:"WEBHOOK_DEDUPE_FP_RATE" envDefault:"0.001"`
}

type PipelineConfig struct {
	// Dietary tag comparison strategy: "exact" or "substring".
	TagMatchPolicy string `env:"TAG_MATCH_POLICY" envDefault:"exact"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	switch c.Pipeline.TagMatchPolicy {
	case "exact", "substring":
	default:
		return fmt.Errorf("invalid tag match policy: %s (must be exact or substring)", c.Pipeline.TagMatchPolicy)
	}

	if c.Webhook.DedupeFPRate <= 0 || c.Webhook.DedupeFPRate >= 1 {
		return fmt.Errorf("webhook dedupe false positive rate must be between 0 and 1")
	}

	return nil
}
