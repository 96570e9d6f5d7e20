// Package openrouter is an alternative generation.Client backed by OpenRouter.
//
// OpenRouter provides a unified API for multiple LLM providers (OpenAI,
// Anthropic, Google, etc.) using a single API key. The request format
// follows the OpenAI chat completions standard.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/services/generation"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// Client sends generation requests to OpenRouter.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New creates a new OpenRouter client.
func New(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		// Go Pattern: Always configure timeouts on HTTP clients.
		// The default http.Client has NO timeout — requests can hang forever!
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // LLMs can be slow
		},
	}
}

// WithBaseURL points the client at a different OpenAI-compatible endpoint.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// --- OpenRouter API types ---
// These match the OpenAI chat completions format used by OpenRouter.

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage carries its content as typed parts so the three inputs stay
// separate, mirroring the three parts sent to Gemini.
type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Model string `json:"model"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Generate sends one chat completion request.
func (c *Client) Generate(ctx context.Context, req generation.Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: OpenRouter API key not configured; set OPENROUTER_API_KEY", apperrors.ErrRemote)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: req.JobDescription},
					{Type: "text", Text: req.ResumeText},
					{Type: "text", Text: req.Instruction},
				},
			},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("HTTP-Referer", "https://github.com/Shimizu-Technology/resume-ai")
	httpReq.Header.Set("X-Title", "Resume AI")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: OpenRouter request failed: %w", apperrors.ErrRemote, err)
	}
	defer resp.Body.Close() // Go Pattern: ALWAYS close response bodies!

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", apperrors.ErrRemote, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %w", apperrors.ErrRemote, err)
	}

	// OpenRouter sometimes reports upstream errors inside a 200 response.
	if chatResp.Error != nil {
		return "", statusError(chatResp.Error.Code, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response from model", apperrors.ErrRemote)
	}

	return chatResp.Choices[0].Message.Content, nil
}

func statusError(code int, detail string) error {
	if code == http.StatusTooManyRequests || code == http.StatusServiceUnavailable {
		return fmt.Errorf("%w: OpenRouter returned %d: %s", apperrors.ErrServiceExhausted, code, detail)
	}
	return fmt.Errorf("%w: OpenRouter returned %d: %s", apperrors.ErrRemote, code, detail)
}
