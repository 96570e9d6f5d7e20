// Package generation dispatches one text-generation request per user action.
//
// The Service combines the job description, the extracted resume text and an
// instruction template into a single request, hands it to a provider Client
// (Gemini or OpenRouter), and classifies whatever comes back. There is no
// retry and no caching: every call reaches the provider.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
)

// Request is everything the remote model sees for one action.
type Request struct {
	JobDescription string
	ResumeText     string
	Instruction    string
}

// Client talks to a hosted text-generation model.
//
// Implementations should wrap overload/quota failures with
// apperrors.ErrServiceExhausted; anything else is classified as
// apperrors.ErrRemote by the Service.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Limiter paces outbound calls. *rate.Limiter from golang.org/x/time/rate
// satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Service handles generation requests.
type Service struct {
	client  Client
	limiter Limiter
	model   string
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithLimiter installs an outbound rate limiter. Without one, calls are not paced.
func WithLimiter(l Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithTimeout bounds each remote call. Zero means no extra deadline beyond
// the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// New creates a generation service. model is reported in results and logs;
// the client is already bound to it.
func New(client Client, model string, opts ...Option) *Service {
	s := &Service{client: client, model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Model returns the model name this service dispatches to.
func (s *Service) Model() string {
	return s.model
}

// Generate waits for a rate-limit token, then sends one request.
//
// On failure the returned text is always empty and the error wraps either
// apperrors.ErrServiceExhausted or apperrors.ErrRemote.
func (s *Service) Generate(ctx context.Context, jobDescription, resumeText, instruction string) (string, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limiter: %v", apperrors.ErrServiceExhausted, err)
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.client.Generate(ctx, Request{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
		Instruction:    instruction,
	})
	if err != nil {
		err = classify(err)
		log.Printf("❌ Generation failed after %s (%s): %v", time.Since(start).Round(time.Millisecond), apperrors.KindOf(err), err)
		return "", err
	}

	log.Printf("🤖 Generated %d chars with %s in %s", len(text), s.model, time.Since(start).Round(time.Millisecond))
	return text, nil
}

// classify makes sure every client failure lands in the shared taxonomy.
func classify(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrServiceExhausted), errors.Is(err, apperrors.ErrRemote):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: request timed out: %w", apperrors.ErrRemote, err)
	default:
		return fmt.Errorf("%w: %w", apperrors.ErrRemote, err)
	}
}
