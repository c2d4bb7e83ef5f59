package domain

import "time"

// Subscription tiers.
const (
	PlanFree    = "free"
	PlanPro     = "pro"
	PlanPremium = "premium"
)

// Tones accepted by the synthesizer.
const (
	ToneClickbait    = "clickbait"
	ToneEducational  = "educational"
	ToneProfessional = "professional"
	ToneHumorous     = "humorous"
	ToneMotivational = "motivational"
)

// User represents an account in the system
type User struct {
	ID               uint
	Email            string
	PasswordHash     string
	FullName         string
	Plan             string
	CreditsRemaining int
	IsEmailVerified  bool
	LastLogin        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}

// TokenClaims represents the verified content of a session token
type TokenClaims struct {
	UserID    uint  `json:"user_id"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

// GenerationRequest is the input to one synthesis run. It is transient;
// only the resulting Generation is persisted.
type GenerationRequest struct {
	Topic     string
	VideoType string
	Tone      string
	MaxLength int
	Keywords  string
}

// TitleSuggestion is one scored title candidate.
type TitleSuggestion struct {
	Title     string `json:"title"`
	Score     int    `json:"score"`
	Emotional int    `json:"emotional"`
	Clarity   int    `json:"clarity"`
	Clickbait int    `json:"clickbait"`
}

// TagSuggestion is one tag with its competition bucket.
type TagSuggestion struct {
	Tag         string `json:"tag"`
	Competition string `json:"competition"`
	Trending    bool   `json:"trending"`
}

// KeywordSuggestion is one keyword phrase with volume and difficulty.
type KeywordSuggestion struct {
	Keyword    string `json:"keyword"`
	Volume     string `json:"volume"`
	Difficulty string `json:"difficulty"`
	Trending   bool   `json:"trending"`
}

// Generation is the persisted output of one synthesis run, owned by a
// user. Immutable once written.
type Generation struct {
	ID          uint                `json:"id"`
	UserID      uint                `json:"-"`
	Topic       string              `json:"topic"`
	VideoType   string              `json:"videoType"`
	Tone        string              `json:"tone"`
	Titles      []TitleSuggestion   `json:"generatedTitles"`
	Description string              `json:"generatedDescription"`
	Tags        []TagSuggestion     `json:"generatedTags"`
	Keywords    []KeywordSuggestion `json:"generatedKeywords"`
	CreditsUsed int                 `json:"creditsUsed"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// GenerationResult is the payload of a successful generation, carrying
// the balance left after the credit decrement.
type GenerationResult struct {
	Titles           []TitleSuggestion
	Description      string
	Tags             []TagSuggestion
	Keywords         []KeywordSuggestion
	CreditsRemaining int
}
