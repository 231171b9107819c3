package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the simulation service.
// Environment variables are parsed from the LIFEFORK_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store selection: memory | postgres | sqlite | mongo
	StoreDriver   string `envconfig:"STORE_DRIVER" default:"memory"`
	PostgresDSN   string `envconfig:"POSTGRES_DSN" default:""`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:""`
	MongoURI      string `envconfig:"MONGO_URI" default:""`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"lifefork"`

	// Narrative generation
	Generator              string `envconfig:"GENERATOR" default:"gemini"`
	GeminiAPIKey           string `envconfig:"GEMINI_API_KEY" default:""`
	GeminiModel            string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GenerateTimeoutSeconds int    `envconfig:"GENERATE_TIMEOUT_SECONDS" default:"60"`
	GenerateMaxRetries     int    `envconfig:"GENERATE_MAX_RETRIES" default:"2"`
	// When the live call fails, synthesize an offline result instead of
	// surfacing the error.
	OfflineFallback bool `envconfig:"OFFLINE_FALLBACK" default:"true"`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates driver/generator choices and their required settings.
func (c *Config) ResolveDefaults() error {
	switch c.StoreDriver {
	case "memory":
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("LIFEFORK_POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("LIFEFORK_SQLITE_PATH is required when STORE_DRIVER=sqlite")
		}
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("LIFEFORK_MONGO_URI is required when STORE_DRIVER=mongo")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}

	switch c.Generator {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("LIFEFORK_GEMINI_API_KEY is required when GENERATOR=gemini")
		}
	case "offline":
	default:
		return fmt.Errorf("unsupported GENERATOR: %s", c.Generator)
	}

	if c.GenerateTimeoutSeconds <= 0 {
		return fmt.Errorf("GENERATE_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Variables are prefixed with LIFEFORK_, e.g. LIFEFORK_HTTP_PORT.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("LIFEFORK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Str("store_driver", cfg.StoreDriver).
		Str("generator", cfg.Generator).
		Str("gemini_model", cfg.GeminiModel).
		Bool("offline_fallback", cfg.OfflineFallback).
		Int("generate_timeout_s", cfg.GenerateTimeoutSeconds).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:               EnvTesting,
		HTTPPort:                  8080,
		StoreDriver:               "memory",
		Generator:                 "offline",
		GeminiModel:               "gemini-2.5-flash",
		GenerateTimeoutSeconds:    60,
		GenerateMaxRetries:        2,
		OfflineFallback:           true,
		HealthIntervalSeconds:     30,
		HealthProbeTimeoutSeconds: 2,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
