// Package gemini is the Google Gemini implementation of generation.Client.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/services/generation"
)

type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client bound to one model. The API key is passed in
// explicitly; nothing is read from the environment here.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	return newClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newClient(ctx context.Context, cc *genai.ClientConfig, model string) (*Client, error) {
	if cc.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is empty")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("API key error: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Generate sends the job description, resume text and instruction as three
// text parts of a single user turn, in that order.
func (c *Client) Generate(ctx context.Context, req generation.Request) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.JobDescription),
			genai.NewPartFromText(req.ResumeText),
			genai.NewPartFromText(req.Instruction),
		}, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", classify(err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked by gemini (%s)", apperrors.ErrRemote, result.PromptFeedback.BlockReason)
	}

	return result.Text(), nil
}

// classify maps Gemini API errors onto the shared taxonomy. 429 and 503
// (RESOURCE_EXHAUSTED / UNAVAILABLE) mean the service is overloaded or the
// quota is spent; everything else is a generic remote error.
func classify(err error) error {
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		apiErr = *apiErrPtr
	default:
		return fmt.Errorf("%w: gemini: %w", apperrors.ErrRemote, err)
	}

	if isExhausted(apiErr) {
		return fmt.Errorf("%w: gemini %d %s: %s", apperrors.ErrServiceExhausted, apiErr.Code, apiErr.Status, apiErr.Message)
	}
	return fmt.Errorf("%w: gemini %d: %s", apperrors.ErrRemote, apiErr.Code, apiErr.Message)
}

func isExhausted(e genai.APIError) bool {
	if e.Code == http.StatusTooManyRequests || e.Code == http.StatusServiceUnavailable {
		return true
	}
	status := strings.ToUpper(e.Status)
	return strings.Contains(status, "RESOURCE_EXHAUSTED") || strings.Contains(status, "UNAVAILABLE")
}
