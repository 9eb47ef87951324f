package config

import (
	"os"
	"strconv"

	"csvprof/domain/table"
	"csvprof/internal/errors"
)

// Config represents the complete application configuration. It is resolved
// once at an entry point; the processing core only ever receives plain values
// derived from it and never reads the environment itself.
type Config struct {
	Server     ServerConfig
	Processing ProcessingConfig
	Agent      AgentConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// ProcessingConfig holds the CSV processing limits
type ProcessingConfig struct {
	MaxSizeMB     int
	PreviewRows   int
	AdvancedStats bool
}

// AgentConfig holds settings consumed by an LLM agent layer on top of the
// engine. The core ignores them.
type AgentConfig struct {
	Model string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Processing: ProcessingConfig{
			MaxSizeMB:     getEnvIntOrDefault("CSV_MAX_SIZE_MB", table.DefaultMaxSizeMB),
			PreviewRows:   getEnvIntOrDefault("CSV_PREVIEW_ROWS", table.DefaultPreviewRows),
			AdvancedStats: getEnvBoolOrDefault("CSV_ADVANCED_STATS", true),
		},
		Agent: AgentConfig{
			Model: getEnvOrDefault("LLM_MODEL", ""),
		},
	}

	if config.Processing.MaxSizeMB <= 0 {
		return nil, errors.ConfigInvalid("CSV_MAX_SIZE_MB must be positive")
	}
	if config.Processing.PreviewRows < 0 {
		return nil, errors.ConfigInvalid("CSV_PREVIEW_ROWS must not be negative")
	}

	return config, nil
}

// ProcessOptions converts the processing section into the limits the core takes
func (c *Config) ProcessOptions() table.ProcessOptions {
	return table.ProcessOptions{
		MaxSizeBytes:  c.Processing.MaxSizeMB * 1024 * 1024,
		PreviewRows:   c.Processing.PreviewRows,
		AdvancedStats: c.Processing.AdvancedStats,
	}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
