package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/domain"
)

// AuthMW wraps the token service and user repository for middleware
type AuthMW struct {
	tokenSvc domain.TokenService
	userRepo domain.UserRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, userRepo domain.UserRepository) *AuthMW {
	return &AuthMW{
		tokenSvc: tokenSvc,
		userRepo: userRepo,
	}
}

// WithAuth returns the bearer token middleware function
func (mw *AuthMW) WithAuth() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.userRepo)
}
