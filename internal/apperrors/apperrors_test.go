package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"missing document", ErrMissingDocument, KindMissingDocument},
		{"wrapped malformed", fmt.Errorf("failed to open PDF: %w", ErrMalformedDocument), KindMalformedDocument},
		{"double wrapped exhausted", fmt.Errorf("gemini: %w", fmt.Errorf("%w: quota", ErrServiceExhausted)), KindServiceExhausted},
		{"remote with cause", fmt.Errorf("%w: %w", ErrRemote, errors.New("boom")), KindRemote},
		{"unknown mode", fmt.Errorf("%w: %q", ErrUnknownMode, "x"), KindUnknownMode},
		{"unclassified", errors.New("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("missing document warning", func(t *testing.T) {
		assert.Equal(t, "Please upload your resume to proceed.", UserMessage(ErrMissingDocument))
	})

	t.Run("exhausted message hides detail", func(t *testing.T) {
		err := fmt.Errorf("%w: 429 quota exceeded for project 123", ErrServiceExhausted)
		msg := UserMessage(err)
		assert.Contains(t, msg, "temporarily overloaded")
		assert.NotContains(t, msg, "project 123")
	})

	t.Run("remote message shows raw detail once", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", ErrRemote, errors.New("invalid API key"))
		msg := UserMessage(err)
		assert.Equal(t, "An error occurred while contacting the AI service: invalid API key", msg)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, UserMessage(nil))
	})
}

func TestIsWarning(t *testing.T) {
	assert.True(t, IsWarning(ErrMissingDocument))
	assert.True(t, IsWarning(fmt.Errorf("form: %w", ErrMissingJobDescription)))
	assert.False(t, IsWarning(ErrMalformedDocument))
	assert.False(t, IsWarning(ErrServiceExhausted))
	assert.False(t, IsWarning(nil))
}
