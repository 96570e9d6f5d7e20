package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GENERATION_PROVIDER", "gemini")
	// Empty numeric values fall back to the defaults.
	for _, key := range []string{"GENERATION_RATE_PER_MINUTE", "GENERATION_BURST", "GENERATION_TIMEOUT_SECONDS", "MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "test-key", cfg.GoogleAPIKey)
	assert.Equal(t, 6.0, cfg.GenerationRatePerMinute)
	assert.Equal(t, 1, cfg.GenerationBurst)
	assert.Equal(t, 120*time.Second, cfg.GenerationTimeout)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, cfg.GeminiModel, cfg.Model())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "gemini without key",
			env:     map[string]string{"GENERATION_PROVIDER": "gemini", "GOOGLE_API_KEY": ""},
			wantErr: "GOOGLE_API_KEY",
		},
		{
			name:    "openrouter without key",
			env:     map[string]string{"GENERATION_PROVIDER": "openrouter", "OPENROUTER_API_KEY": ""},
			wantErr: "OPENROUTER_API_KEY",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"GENERATION_PROVIDER": "carrier-pigeon"},
			wantErr: "unsupported GENERATION_PROVIDER",
		},
		{
			name:    "zero rate",
			env:     map[string]string{"GENERATION_PROVIDER": "gemini", "GOOGLE_API_KEY": "k", "GENERATION_RATE_PER_MINUTE": "0"},
			wantErr: "GENERATION_RATE_PER_MINUTE",
		},
		{
			name:    "zero burst",
			env:     map[string]string{"GENERATION_PROVIDER": "gemini", "GOOGLE_API_KEY": "k", "GENERATION_BURST": "0"},
			wantErr: "GENERATION_BURST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_OpenRouter(t *testing.T) {
	t.Setenv("GENERATION_PROVIDER", "OpenRouter")
	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("OPENROUTER_MODEL", "anthropic/claude-sonnet")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "anthropic/claude-sonnet", cfg.Model())
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CFG_TEST_INT", "not-a-number")
	t.Setenv("CFG_TEST_FLOAT", "2.5")

	assert.Equal(t, 7, getEnvInt("CFG_TEST_INT", 7))
	assert.Equal(t, 2.5, getEnvFloat("CFG_TEST_FLOAT", 1))
	assert.Equal(t, "fallback", getEnv("CFG_TEST_UNSET_KEY", "fallback"))
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		perMinute float64
		want      time.Duration
	}{
		{6, 10 * time.Second},
		{1, time.Minute},
		{600, time.Second},
		{0, time.Minute},
	}
	for _, tt := range tests {
		cfg := &Config{GenerationRatePerMinute: tt.perMinute}
		assert.Equal(t, tt.want, cfg.RetryAfter(), "rate %v/min", tt.perMinute)
	}
}
