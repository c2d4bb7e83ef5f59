package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/domain"
	"github.com/you/ytstudio/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents registration request
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// SigninRequest represents login request
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest represents profile update request
type UpdateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// userPayload shapes a user for responses; the password hash never
// leaves the server.
func userPayload(u *domain.User) gin.H {
	payload := gin.H{
		"id":               u.ID,
		"email":            u.Email,
		"fullName":         u.FullName,
		"plan":             u.Plan,
		"creditsRemaining": u.CreditsRemaining,
		"isEmailVerified":  u.IsEmailVerified,
		"createdAt":        u.CreatedAt,
	}
	if u.LastLogin != nil {
		payload["lastLogin"] = u.LastLogin
	}
	return payload
}

// Signup handles user registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" || req.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		log.Printf("SIGNUP_FAILED: email=%s error=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   result.Token,
		"user":    userPayload(result.User),
	})
}

// Signin handles user login
func (h *AuthHandlers) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Printf("SIGNIN_FAILED: email=%s error=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    userPayload(result.User),
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// Update handles password-gated profile changes
func (h *AuthHandlers) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required to update details."})
		return
	}

	updated, err := h.authSvc.UpdateProfile(c.Request.Context(), user.ID, req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
		default:
			log.Printf("UPDATE_FAILED: user_id=%d error=%v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error updating user details."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"user":    userPayload(updated),
	})
}

// Signout acknowledges a logout. Tokens are stateless; the client
// discards its copy.
func (h *AuthHandlers) Signout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}

// ResetPassword handles a password reset request. The response is the
// same whether or not the account exists.
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		log.Printf("RESET_REQUEST_FAILED: error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during password reset"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "If an account with that email exists, a password reset link has been sent.",
	})
}
