package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Shimizu-Technology/resume-ai/internal/apperrors"
	"github.com/Shimizu-Technology/resume-ai/internal/services/generation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{"429 value", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota"}, apperrors.KindServiceExhausted},
		{"503 overloaded", genai.APIError{Code: 503, Status: "UNAVAILABLE", Message: "The model is overloaded"}, apperrors.KindServiceExhausted},
		{"status only", genai.APIError{Status: "RESOURCE_EXHAUSTED"}, apperrors.KindServiceExhausted},
		{"pointer 429", &genai.APIError{Code: 429}, apperrors.KindServiceExhausted},
		{"wrapped 429", fmt.Errorf("call: %w", genai.APIError{Code: 429}), apperrors.KindServiceExhausted},
		{"400 invalid", genai.APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "API key not valid"}, apperrors.KindRemote},
		{"network", errors.New("dial tcp: no such host"), apperrors.KindRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(classify(tt.err)))
		})
	}
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), "", "gemini-2.5-pro")
	require.Error(t, err)
}

// newTestClient points the SDK at an httptest server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := newClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "gemini-test")
	require.NoError(t, err)
	return c
}

func TestGenerate_SendsThreePartsInOrder(t *testing.T) {
	var body struct {
		Contents []struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Match: 80%"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), generation.Request{
		JobDescription: "Seeking backend engineer",
		ResumeText:     "Experienced backend engineer",
		Instruction:    "As a skilled ATS system...",
	})
	require.NoError(t, err)
	assert.Equal(t, "Match: 80%", text)

	require.Len(t, body.Contents, 1)
	assert.Equal(t, "user", body.Contents[0].Role)
	require.Len(t, body.Contents[0].Parts, 3)
	assert.Equal(t, "Seeking backend engineer", body.Contents[0].Parts[0].Text)
	assert.Equal(t, "Experienced backend engineer", body.Contents[0].Parts[1].Text)
	assert.Equal(t, "As a skilled ATS system...", body.Contents[0].Parts[2].Text)
}

func TestGenerate_QuotaExhausted(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"Resource has been exhausted (e.g. check quota).","status":"RESOURCE_EXHAUSTED"}}`))
	})

	text, err := c.Generate(context.Background(), generation.Request{JobDescription: "jd", ResumeText: "r", Instruction: "i"})
	require.Error(t, err)
	assert.Empty(t, text)
	assert.True(t, errors.Is(err, apperrors.ErrServiceExhausted), "got %v", err)
}

func TestGenerate_BadRequestIsRemote(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	_, err := c.Generate(context.Background(), generation.Request{JobDescription: "jd", ResumeText: "r", Instruction: "i"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRemote), "got %v", err)
	assert.Contains(t, err.Error(), "API key not valid")
}
