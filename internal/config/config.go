// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// Values are read once at startup into a Config struct, which is then passed
// explicitly to every constructor that needs it. Nothing reads os.Getenv
// after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Supported generation providers.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// Generation provider selection
	Provider string // "gemini" or "openrouter"

	// Google Gemini settings
	GoogleAPIKey string
	GeminiModel  string

	// OpenRouter settings (alternative provider)
	OpenRouterAPIKey string
	OpenRouterModel  string

	// Outbound rate limiting for the generation service (token bucket)
	GenerationRatePerMinute float64
	GenerationBurst         int
	GenerationTimeout       time.Duration

	// Upload limits
	MaxUploadBytes int64

	// Inbound rate limiting: requests per hour per client IP (0 = disabled)
	ClientRateLimit int

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// The API key for the selected provider is required; we refuse to start
// without it rather than failing on the first button press.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		Provider: strings.ToLower(getEnv("GENERATION_PROVIDER", ProviderGemini)),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-pro"),

		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", "google/gemini-2.5-pro"),

		// 6/min with a burst of 1 spaces calls 10s apart under sustained load
		GenerationRatePerMinute: getEnvFloat("GENERATION_RATE_PER_MINUTE", 6),
		GenerationBurst:         getEnvInt("GENERATION_BURST", 1),
		GenerationTimeout:       time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 120)) * time.Second,

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,

		ClientRateLimit: getEnvInt("CLIENT_RATE_LIMIT", 60),

		AllowedOrigins: []string{
			getEnv("CORS_ORIGIN", "http://localhost:8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can actually serve requests.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini:
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY must be set when GENERATION_PROVIDER=%s", ProviderGemini)
		}
	case ProviderOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY must be set when GENERATION_PROVIDER=%s", ProviderOpenRouter)
		}
	default:
		return fmt.Errorf("unsupported GENERATION_PROVIDER %q (want %q or %q)", c.Provider, ProviderGemini, ProviderOpenRouter)
	}

	if c.GenerationRatePerMinute <= 0 {
		return fmt.Errorf("GENERATION_RATE_PER_MINUTE must be positive, got %v", c.GenerationRatePerMinute)
	}
	if c.GenerationBurst < 1 {
		return fmt.Errorf("GENERATION_BURST must be at least 1, got %d", c.GenerationBurst)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	return nil
}

// Model returns the model name for the selected provider.
func (c *Config) Model() string {
	if c.Provider == ProviderOpenRouter {
		return c.OpenRouterModel
	}
	return c.GeminiModel
}

// RetryAfter is how long a client should wait before retrying after the
// generation service reports exhaustion: one token interval, at least a second.
func (c *Config) RetryAfter() time.Duration {
	if c.GenerationRatePerMinute <= 0 {
		return time.Minute
	}
	d := time.Duration(float64(time.Minute) / c.GenerationRatePerMinute)
	if d < time.Second {
		return time.Second
	}
	return d
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvFloat(key string, fallback float64) float64 {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return fallback
	}
	return val
}
