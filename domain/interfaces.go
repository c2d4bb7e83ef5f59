package domain

import "context"

// UserRepository defines credential store data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	// DecrementCredits atomically takes one credit from the user's
	// balance, never below zero, and returns the remaining balance.
	// Returns ErrInsufficientCredits when the balance is already zero.
	DecrementCredits(ctx context.Context, userID uint) (int, error)
}

// GenerationRepository defines generation ledger data access operations
type GenerationRepository interface {
	Create(ctx context.Context, gen *Generation) error
	ListRecent(ctx context.Context, userID uint, limit int) ([]*Generation, error)
}

// ResetTokenRepository defines password reset token storage
type ResetTokenRepository interface {
	Store(ctx context.Context, token string, userID uint) error
	Lookup(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, fullName, email, password string) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
}

// GenerationService defines the credit-gated generation lifecycle
type GenerationService interface {
	Generate(ctx context.Context, user *User, req *GenerationRequest) (*GenerationResult, error)
	History(ctx context.Context, userID uint, limit int) ([]*Generation, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(userID uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound notification operations
type NotificationService interface {
	SendEmail(to, subject, body string) error
}
