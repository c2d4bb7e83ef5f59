package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Generation errors
var (
	ErrMissingGenerationFields = errors.New("topic, video type and tone are required")
	ErrInsufficientCredits     = errors.New("insufficient credits")
)

// Reset token errors
var (
	ErrResetTokenNotFound = errors.New("reset token not found")
)
