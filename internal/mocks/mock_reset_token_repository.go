package mocks

import (
	"context"

	"github.com/you/ytstudio/domain"
)

// MockResetTokenRepository implements domain.ResetTokenRepository interface for testing
type MockResetTokenRepository struct {
	StoreFunc  func(ctx context.Context, token string, userID uint) error
	LookupFunc func(ctx context.Context, token string) (uint, error)
	DeleteFunc func(ctx context.Context, token string) error
}

// NewMockResetTokenRepository creates a new MockResetTokenRepository with default behaviors
func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{}
}

// Store saves a reset token
func (m *MockResetTokenRepository) Store(ctx context.Context, token string, userID uint) error {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, token, userID)
	}
	// Default behavior: success
	return nil
}

// Lookup resolves a reset token to a user ID
func (m *MockResetTokenRepository) Lookup(ctx context.Context, token string) (uint, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, token)
	}
	// Default behavior: not found
	return 0, domain.ErrResetTokenNotFound
}

// Delete removes a reset token
func (m *MockResetTokenRepository) Delete(ctx context.Context, token string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.ResetTokenRepository = (*MockResetTokenRepository)(nil)
