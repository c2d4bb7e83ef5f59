package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "ErrUserNotFound",
			err:         ErrUserNotFound,
			expectedMsg: "user not found",
		},
		{
			name:        "ErrInvalidCredentials",
			err:         ErrInvalidCredentials,
			expectedMsg: "invalid credentials",
		},
		{
			name:        "ErrUserAlreadyExists",
			err:         ErrUserAlreadyExists,
			expectedMsg: "user already exists",
		},
		{
			name:        "ErrTokenInvalid",
			err:         ErrTokenInvalid,
			expectedMsg: "invalid token",
		},
		{
			name:        "ErrTokenExpired",
			err:         ErrTokenExpired,
			expectedMsg: "token has expired",
		},
		{
			name:        "ErrTokenMalformed",
			err:         ErrTokenMalformed,
			expectedMsg: "malformed token",
		},
		{
			name:        "ErrMissingGenerationFields",
			err:         ErrMissingGenerationFields,
			expectedMsg: "topic, video type and tone are required",
		},
		{
			name:        "ErrInsufficientCredits",
			err:         ErrInsufficientCredits,
			expectedMsg: "insufficient credits",
		},
		{
			name:        "ErrResetTokenNotFound",
			err:         ErrResetTokenNotFound,
			expectedMsg: "reset token not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected error message %q, got %q", tt.expectedMsg, tt.err.Error())
			}

			wrapped := fmt.Errorf("request failed: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Error("wrapped error lost its identity")
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	if errors.Is(ErrTokenInvalid, ErrTokenExpired) {
		t.Error("ErrTokenInvalid and ErrTokenExpired must be distinguishable")
	}
	if errors.Is(ErrUserNotFound, ErrInvalidCredentials) {
		t.Error("ErrUserNotFound and ErrInvalidCredentials must be distinguishable")
	}
}
