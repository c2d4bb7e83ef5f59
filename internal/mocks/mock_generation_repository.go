package mocks

import (
	"context"

	"github.com/you/ytstudio/domain"
)

// MockGenerationRepository implements domain.GenerationRepository interface for testing
type MockGenerationRepository struct {
	CreateFunc     func(ctx context.Context, gen *domain.Generation) error
	ListRecentFunc func(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error)
}

// NewMockGenerationRepository creates a new MockGenerationRepository with default behaviors
func NewMockGenerationRepository() *MockGenerationRepository {
	return &MockGenerationRepository{}
}

// Create persists a generation record
func (m *MockGenerationRepository) Create(ctx context.Context, gen *domain.Generation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, gen)
	}
	// Default behavior: success
	return nil
}

// ListRecent returns recent generation records
func (m *MockGenerationRepository) ListRecent(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, userID, limit)
	}
	// Default behavior: empty history
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.GenerationRepository = (*MockGenerationRepository)(nil)
