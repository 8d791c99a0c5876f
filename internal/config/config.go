// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the solace service.
// Environment variables are automatically parsed from the SOLACE_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8000"`

	// Storage: memory | sqlite | postgres
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/solace.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Flat-file archive of completed assessments
	ProfilesFile string `envconfig:"PROFILES_FILE" default:"data/profiles.json"`

	// Text-generation provider
	LLMBaseURL string `envconfig:"LLM_BASE_URL" default:"https://api.groq.com/openai/v1"`
	LLMModel   string `envconfig:"LLM_MODEL" default:"mixtral-8x7b-32768"`
	LLMAPIKey  string `envconfig:"LLM_API_KEY" default:""`

	// Health checking
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the driver choice and its required settings.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for DB_DRIVER=sqlite")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	return nil
}

// New creates a Config by parsing environment variables.
// Variables are prefixed with SOLACE_, e.g. SOLACE_HTTP_PORT, SOLACE_DB_DRIVER.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("SOLACE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("llm_base_url", cfg.LLMBaseURL).
		Str("llm_model", cfg.LLMModel).
		Str("profiles_file", cfg.ProfilesFile).
		Msg("Configuration loaded")

	return &cfg, nil
}
