package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/domain"
	"github.com/you/ytstudio/internal/http/middleware"
	"github.com/you/ytstudio/internal/services"
)

// GenerationHandlers handles content generation HTTP requests
type GenerationHandlers struct {
	genSvc domain.GenerationService
}

// NewGenerationHandlers creates new generation handlers
func NewGenerationHandlers(genSvc domain.GenerationService) *GenerationHandlers {
	return &GenerationHandlers{genSvc: genSvc}
}

// GenerateRequest represents a content generation request
type GenerateRequest struct {
	Topic     string `json:"topic"`
	VideoType string `json:"videoType"`
	Tone      string `json:"tone"`
	MaxLength int    `json:"maxLength"`
	Keywords  string `json:"keywords"`
}

// Generate handles the credit-gated generation request
func (h *GenerationHandlers) Generate(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.genSvc.Generate(c.Request.Context(), user, &domain.GenerationRequest{
		Topic:     req.Topic,
		VideoType: req.VideoType,
		Tone:      req.Tone,
		MaxLength: req.MaxLength,
		Keywords:  req.Keywords,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingGenerationFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic, video type, and tone are required"})
		case errors.Is(err, domain.ErrInsufficientCredits):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient credits. Please upgrade your plan."})
		default:
			log.Printf("GENERATION_FAILED: user_id=%d error=%v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during content generation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"titles":           result.Titles,
		"description":      result.Description,
		"tags":             result.Tags,
		"keywords":         result.Keywords,
		"creditsRemaining": result.CreditsRemaining,
	})
}

// History returns the user's recent generations, newest first.
func (h *GenerationHandlers) History(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	generations, err := h.genSvc.History(c.Request.Context(), user.ID, services.DefaultHistoryLimit)
	if err != nil {
		log.Printf("HISTORY_FAILED: user_id=%d error=%v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching generation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": generations})
}
