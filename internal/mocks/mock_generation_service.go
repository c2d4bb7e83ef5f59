package mocks

import (
	"context"

	"github.com/you/ytstudio/domain"
)

// MockGenerationService implements domain.GenerationService interface for testing
type MockGenerationService struct {
	GenerateFunc func(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error)
	HistoryFunc  func(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error)
}

// NewMockGenerationService creates a new MockGenerationService with default behaviors
func NewMockGenerationService() *MockGenerationService {
	return &MockGenerationService{}
}

// Generate runs the credit-gated generation lifecycle
func (m *MockGenerationService) Generate(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, user, req)
	}
	// Default behavior: reject for missing fields
	return nil, domain.ErrMissingGenerationFields
}

// History returns recent generations
func (m *MockGenerationService) History(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID, limit)
	}
	// Default behavior: empty history
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.GenerationService = (*MockGenerationService)(nil)
