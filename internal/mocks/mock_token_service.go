package mocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/you/ytstudio/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a session token
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: recognizable fake token
	return fmt.Sprintf("token_%d", userID), nil
}

// Validate verifies a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: accept tokens minted by the default Generate
	idStr, ok := strings.CutPrefix(token, "token_")
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	now := time.Now()
	return &domain.TokenClaims{
		UserID:    uint(id),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
