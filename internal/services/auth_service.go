package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/you/ytstudio/domain"
)

// AuthConfig carries the account defaults applied at registration.
type AuthConfig struct {
	DefaultPlan   string
	SignupCredits int
	TokenTTL      time.Duration
}

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	resetRepo   domain.ResetTokenRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	notifySvc   domain.NotificationService
	cfg         AuthConfig
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	resetRepo domain.ResetTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notifySvc domain.NotificationService,
	cfg AuthConfig,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		notifySvc:   notifySvc,
		cfg:         cfg,
	}
}

// normalizeEmail lower-cases an address so uniqueness is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, password, fullName string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:            email,
		PasswordHash:     hashedPassword,
		FullName:         fullName,
		Plan:             s.cfg.DefaultPlan,
		CreditsRemaining: s.cfg.SignupCredits,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := s.tokenSvc.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.cfg.TokenTTL.Seconds()),
	}, nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService. The caller's current
// password gates every profile change.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, fullName, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if fullName != "" {
		user.FullName = fullName
	}
	if email != "" {
		user.Email = normalizeEmail(email)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// RequestPasswordReset implements domain.AuthService. The outcome is
// identical whether or not the address exists, so the endpoint cannot
// be used to enumerate accounts.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := generateResetToken()
	if err := s.resetRepo.Store(ctx, token, user.ID); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	body := fmt.Sprintf("A password reset was requested for your account.\n\nYour reset token: %s\n\nIf you did not request this, you can ignore this email.", token)
	if err := s.notifySvc.SendEmail(user.Email, "Reset your password", body); err != nil {
		// The generic response must not leak delivery failures.
		log.Printf("RESET_EMAIL_FAILED: user_id=%d error=%v", user.ID, err)
	}

	return nil
}

// generateResetToken returns 32 random bytes hex-encoded.
func generateResetToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
