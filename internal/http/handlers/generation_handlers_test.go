package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/ytstudio/domain"
	"github.com/you/ytstudio/internal/mocks"
)

func setupGenerationRouter(genSvc domain.GenerationService, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGenerationHandlers(genSvc)

	router := gin.New()
	router.POST("/api/generate", withUser(user), h.Generate)
	router.GET("/api/generate/history", withUser(user), h.History)
	return router
}

func sampleResult() *domain.GenerationResult {
	return &domain.GenerationResult{
		Titles: []domain.TitleSuggestion{
			{Title: "Photography Basics - Complete Guide", Score: 85, Emotional: 72, Clarity: 90, Clickbait: 65},
		},
		Description: "🎬 Photography Basics",
		Tags: []domain.TagSuggestion{
			{Tag: "photographybasics", Competition: "low", Trending: true},
		},
		Keywords: []domain.KeywordSuggestion{
			{Keyword: "photography basics tutorial", Volume: "10K-100K", Difficulty: "medium"},
		},
		CreditsRemaining: 9,
	}
}

func TestGenerationHandlers_Generate(t *testing.T) {
	tests := []struct {
		name           string
		payload        any
		setupMocks     func(*mocks.MockGenerationService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:    "successful generation",
			payload: GenerateRequest{Topic: "Photography Basics", VideoType: "tutorial", Tone: domain.ToneClickbait},
			setupMocks: func(genSvc *mocks.MockGenerationService) {
				genSvc.GenerateFunc = func(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
					return sampleResult(), nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "missing required fields",
			payload: GenerateRequest{Topic: "Photography Basics"},
			setupMocks: func(genSvc *mocks.MockGenerationService) {
				genSvc.GenerateFunc = func(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
					return nil, domain.ErrMissingGenerationFields
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Topic, video type, and tone are required",
		},
		{
			name:    "exhausted balance",
			payload: GenerateRequest{Topic: "Photography Basics", VideoType: "tutorial", Tone: domain.ToneClickbait},
			setupMocks: func(genSvc *mocks.MockGenerationService) {
				genSvc.GenerateFunc = func(ctx context.Context, user *domain.User, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
					return nil, domain.ErrInsufficientCredits
				}
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  "Insufficient credits. Please upgrade your plan.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genSvc := mocks.NewMockGenerationService()
			if tt.setupMocks != nil {
				tt.setupMocks(genSvc)
			}
			router := setupGenerationRouter(genSvc, authedUser())

			w, body := doJSON(t, router, http.MethodPost, "/api/generate", tt.payload)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d (body: %s)", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedError != "" {
				if body["error"] != tt.expectedError {
					t.Errorf("error = %q, want %q", body["error"], tt.expectedError)
				}
				return
			}
			if body["creditsRemaining"] != float64(9) {
				t.Errorf("creditsRemaining = %v", body["creditsRemaining"])
			}
			titles, ok := body["titles"].([]any)
			if !ok || len(titles) != 1 {
				t.Fatalf("titles = %v", body["titles"])
			}
			if body["description"] != "🎬 Photography Basics" {
				t.Errorf("description = %v", body["description"])
			}
		})
	}
}

func TestGenerationHandlers_History(t *testing.T) {
	genSvc := mocks.NewMockGenerationService()
	var requestedLimit int
	genSvc.HistoryFunc = func(ctx context.Context, userID uint, limit int) ([]*domain.Generation, error) {
		requestedLimit = limit
		return []*domain.Generation{
			{
				ID:          3,
				UserID:      userID,
				Topic:       "Photography Basics",
				VideoType:   "tutorial",
				Tone:        domain.ToneClickbait,
				CreditsUsed: 1,
				CreatedAt:   time.Now(),
			},
		}, nil
	}

	router := setupGenerationRouter(genSvc, authedUser())

	req := httptest.NewRequest(http.MethodGet, "/api/generate/history", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
	}
	if requestedLimit != 20 {
		t.Errorf("limit = %d, want 20", requestedLimit)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	gens, ok := body["generations"].([]any)
	if !ok || len(gens) != 1 {
		t.Fatalf("generations = %v", body["generations"])
	}
	entry, ok := gens[0].(map[string]any)
	if !ok {
		t.Fatalf("entry = %v", gens[0])
	}
	if entry["topic"] != "Photography Basics" {
		t.Errorf("topic = %v", entry["topic"])
	}
	if _, leaked := entry["UserID"]; leaked {
		t.Error("internal field leaked in response")
	}
}
