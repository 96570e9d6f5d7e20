// Package provider wires the configured generation backend and its
// outbound rate limiter into a generation.Service.
package provider

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/Shimizu-Technology/resume-ai/internal/config"
	"github.com/Shimizu-Technology/resume-ai/internal/services/gemini"
	"github.com/Shimizu-Technology/resume-ai/internal/services/generation"
	"github.com/Shimizu-Technology/resume-ai/internal/services/openrouter"
)

// NewClient builds the generation.Client selected by cfg.Provider.
func NewClient(ctx context.Context, cfg *config.Config) (generation.Client, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.New(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	case config.ProviderOpenRouter:
		return openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider %q", cfg.Provider)
	}
}

// NewLimiter builds the token bucket that paces outbound generation calls.
func NewLimiter(cfg *config.Config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.GenerationRatePerMinute/60.0), cfg.GenerationBurst)
}

// NewService builds a fully configured generation.Service from cfg.
func NewService(ctx context.Context, cfg *config.Config) (*generation.Service, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return generation.New(client, cfg.Model(),
		generation.WithLimiter(NewLimiter(cfg)),
		generation.WithTimeout(cfg.GenerationTimeout),
	), nil
}
