package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Shimizu-Technology/resume-ai/internal/services/generation"
)

// MockGenerationClient is a testify mock of generation.Client.
type MockGenerationClient struct {
	mock.Mock
}

func (m *MockGenerationClient) Generate(ctx context.Context, req generation.Request) (string, error) {
	args := m.Called(ctx, req)

	return args.String(0), args.Error(1)
}
