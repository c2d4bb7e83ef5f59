package mocks

import (
	"context"

	"github.com/you/ytstudio/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, email, password, fullName string) (*domain.AuthResult, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetProfileFunc           func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc        func(ctx context.Context, userID uint, fullName, email, password string) (*domain.User, error)
	RequestPasswordResetFunc func(ctx context.Context, email string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, email, password, fullName string) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, fullName)
	}
	// Default behavior: fail loudly so tests set expectations
	return nil, domain.ErrUserAlreadyExists
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: reject
	return nil, domain.ErrInvalidCredentials
}

// GetProfile fetches a user profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// UpdateProfile applies password-gated profile changes
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, fullName, email, password string) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, fullName, email, password)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// RequestPasswordReset starts a password reset
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
