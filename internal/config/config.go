// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultPort               = 5000
	DefaultMaxUploadMB        = 16
	DefaultSessionTTL         = "2h"
	DefaultRateLimitPerMinute = 30
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, flags or defaults.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables persistence
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables semantic scoring

	// Server
	Port               int    `json:"port,omitempty"`
	MaxUploadMB        int    `json:"max_upload_mb,omitempty"`
	SessionTTL         string `json:"session_ttl,omitempty"` // Go duration, e.g. "2h"
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty"`

	// Models
	EmbeddingModel string `json:"embedding_model,omitempty"`
	EntityModel    string `json:"entity_model,omitempty"`
	UseEntities    bool   `json:"use_entities,omitempty"` // add LLM entity recognition to skill extraction

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:               DefaultPort,
		MaxUploadMB:        DefaultMaxUploadMB,
		SessionTTL:         DefaultSessionTTL,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables.
func FromEnv() Config {
	return Config{
		DatabaseURL:        getEnvString("DATABASE_URL", ""),
		APIKey:             getEnvString("GEMINI_API_KEY", ""),
		Port:               getEnvInt("PORT", 0),
		MaxUploadMB:        getEnvInt("ATS_MAX_UPLOAD_MB", 0),
		SessionTTL:         getEnvString("ATS_SESSION_TTL", ""),
		RateLimitPerMinute: getEnvInt("ATS_RATE_LIMIT_PER_MINUTE", 0),
		EmbeddingModel:     getEnvString("ATS_EMBEDDING_MODEL", ""),
		EntityModel:        getEnvString("ATS_ENTITY_MODEL", ""),
		UseEntities:        getEnvBool("ATS_USE_ENTITIES", false),
	}
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; commands check what they need after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("config error: 'max_upload_mb' must be non-negative")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_minute' must be non-negative")
	}
	if c.SessionTTL != "" {
		ttl, err := time.ParseDuration(c.SessionTTL)
		if err != nil {
			return fmt.Errorf("config error: invalid 'session_ttl' %q: %w", c.SessionTTL, err)
		}
		if ttl <= 0 {
			return fmt.Errorf("config error: 'session_ttl' must be positive")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer flags over the config file over the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SessionTTL == "" {
		result.SessionTTL = defaults.SessionTTL
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.EntityModel == "" {
		result.EntityModel = defaults.EntityModel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}

	// Bool fields: either layer switching them on wins
	result.UseEntities = result.UseEntities || defaults.UseEntities
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// SessionTTLDuration parses SessionTTL, returning zero when it is unset or invalid.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0
	}
	return d
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
