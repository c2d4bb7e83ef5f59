package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/you/ytstudio/internal/http/handlers"
	"github.com/you/ytstudio/internal/http/middleware"
	"github.com/you/ytstudio/internal/infrastructure/auth"
	"github.com/you/ytstudio/internal/infrastructure/notifications"
	"github.com/you/ytstudio/internal/infrastructure/repositories"
	"github.com/you/ytstudio/internal/mocks"
	"github.com/you/ytstudio/internal/services"
)

// setupServer wires real services against an in-memory database so the
// whole request lifecycle runs exactly as in production, minus Redis
// and the email provider.
func setupServer(t *testing.T, signupCredits int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&repositories.DBUser{}, &repositories.DBGeneration{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	genRepo := repositories.NewGenerationRepository(db)
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService("integration-test-secret", "ytstudio", time.Hour)

	authSvc := services.NewAuthService(
		userRepo,
		mocks.NewMockResetTokenRepository(),
		passwordSvc,
		tokenSvc,
		notifications.NewResendService("", ""),
		services.AuthConfig{DefaultPlan: "free", SignupCredits: signupCredits, TokenTTL: time.Hour},
	)
	genSvc := services.NewGenerationService(genRepo, userRepo)

	ah := handlers.NewAuthHandlers(authSvc)
	gh := handlers.NewGenerationHandlers(genSvc)
	authmw := middleware.NewAuthMW(tokenSvc, userRepo)

	return BuildRouter(ah, gh, authmw, "*")
}

func postJSON(t *testing.T, router *gin.Engine, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func getJSON(t *testing.T, router *gin.Engine, path, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return w, body
}

func signup(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w, body := postJSON(t, router, "/auth/signup", "", map[string]any{
		"email":    "creator@example.com",
		"password": "securepassword",
		"fullName": "Test Creator",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup status = %d (body: %s)", w.Code, w.Body.String())
	}
	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatal("signup returned no token")
	}
	return token
}

func TestServer_Health(t *testing.T) {
	router := setupServer(t, 10)

	w, body := getJSON(t, router, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if body["message"] != "Server is running!" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestServer_SignupSigninRoundTrip(t *testing.T) {
	router := setupServer(t, 10)
	signup(t, router)

	w, body := postJSON(t, router, "/auth/signin", "", map[string]any{
		"email":    "Creator@Example.com",
		"password": "securepassword",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signin status = %d (body: %s)", w.Code, w.Body.String())
	}

	token := body["token"].(string)
	w, body = getJSON(t, router, "/auth/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	user := body["user"].(map[string]any)
	if user["email"] != "creator@example.com" {
		t.Errorf("email = %v", user["email"])
	}
	if user["creditsRemaining"] != float64(10) {
		t.Errorf("creditsRemaining = %v", user["creditsRemaining"])
	}
}

func TestServer_ProtectedRoutesRejectAnonymous(t *testing.T) {
	router := setupServer(t, 10)

	for _, path := range []string{"/auth/me", "/generate/history"} {
		w, _ := getJSON(t, router, path, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s status = %d, want 401", path, w.Code)
		}
	}
}

func TestServer_GenerateUntilCreditsExhaust(t *testing.T) {
	router := setupServer(t, 3)
	token := signup(t, router)

	payload := map[string]any{
		"topic":     "Photography Basics",
		"videoType": "tutorial",
		"tone":      "clickbait",
	}

	for i := 0; i < 3; i++ {
		w, body := postJSON(t, router, "/generate/generate", token, payload)
		if w.Code != http.StatusOK {
			t.Fatalf("generation %d status = %d (body: %s)", i+1, w.Code, w.Body.String())
		}
		if body["creditsRemaining"] != float64(2-i) {
			t.Errorf("generation %d creditsRemaining = %v, want %d", i+1, body["creditsRemaining"], 2-i)
		}
		titles, ok := body["titles"].([]any)
		if !ok || len(titles) != 5 {
			t.Fatalf("generation %d titles = %v", i+1, body["titles"])
		}
	}

	w, body := postJSON(t, router, "/generate/generate", token, payload)
	if w.Code != http.StatusForbidden {
		t.Fatalf("exhausted status = %d (body: %s)", w.Code, w.Body.String())
	}
	if body["error"] != "Insufficient credits. Please upgrade your plan." {
		t.Errorf("error = %v", body["error"])
	}
}

func TestServer_HistoryNewestFirstCapped(t *testing.T) {
	router := setupServer(t, 25)
	token := signup(t, router)

	for i := 0; i < 22; i++ {
		w, _ := postJSON(t, router, "/generate/generate", token, map[string]any{
			"topic":     fmt.Sprintf("Topic %02d", i),
			"videoType": "tutorial",
			"tone":      "professional",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("generation %d status = %d", i+1, w.Code)
		}
	}

	w, body := getJSON(t, router, "/generate/history", token)
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d (body: %s)", w.Code, w.Body.String())
	}
	gens, ok := body["generations"].([]any)
	if !ok {
		t.Fatalf("generations = %v", body["generations"])
	}
	if len(gens) != 20 {
		t.Fatalf("history length = %d, want 20", len(gens))
	}
	first := gens[0].(map[string]any)
	if first["topic"] != "Topic 21" {
		t.Errorf("first entry = %v, want the newest topic", first["topic"])
	}
}

func TestServer_MissingGenerationFields(t *testing.T) {
	router := setupServer(t, 10)
	token := signup(t, router)

	w, body := postJSON(t, router, "/generate/generate", token, map[string]any{
		"topic": "Photography Basics",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d (body: %s)", w.Code, w.Body.String())
	}
	if body["error"] != "Topic, video type, and tone are required" {
		t.Errorf("error = %v", body["error"])
	}

	// A rejected request must not burn a credit.
	_, me := getJSON(t, router, "/auth/me", token)
	user := me["user"].(map[string]any)
	if user["creditsRemaining"] != float64(10) {
		t.Errorf("creditsRemaining = %v, want 10", user["creditsRemaining"])
	}
}
