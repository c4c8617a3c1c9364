package api

import "github.com/requinsolutions/aidetect/internal/session"

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        session.User `json:"user"`
}

// SentenceResult is one classified sentence within a prediction.
type SentenceResult struct {
	Sentence                string  `json:"sentence"`
	HumanProbability        float64 `json:"human_probability"`
	AIProbability           float64 `json:"ai_probability"`
	OverPolishedProbability float64 `json:"over_polished_probability"`
	FinalLabel              string  `json:"final_label"`
}

// Prediction is the body returned by POST /predict.
type Prediction struct {
	TokensLeft              int              `json:"tokens_left"`
	OverallHumanProbability float64          `json:"overall_human_probability"`
	OverallAIProbability    float64          `json:"overall_ai_probability"`
	FinalDocumentLabel      string           `json:"final_document_label"`
	Sentences               []SentenceResult `json:"sentences"`
	SentencesProcessed      int              `json:"sentences_processed"`
	SentencesReceived       int              `json:"sentences_received"`
}

// ExtractResult is the body returned by POST /extract-file.
type ExtractResult struct {
	Filename   string `json:"filename"`
	Text       string `json:"text"`
	Characters int    `json:"characters"`
}

// HistoryEntry is one past scan, as returned by GET /my-history and
// GET /admin/users/{id}/logs.
type HistoryEntry struct {
	ID           string  `json:"id"`
	ScannedText  string  `json:"scanned_text"`
	Result       string  `json:"result"`
	AIPercent    float64 `json:"ai_percent"`
	HumanPercent float64 `json:"human_percent"`
	Timestamp    string  `json:"timestamp"`
}

// AccountRow is one account in the admin user listing.
type AccountRow struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Tokens          int    `json:"tokens"`
	Role            string `json:"role"`
	MaxUsersAllowed *int   `json:"max_users_allowed,omitempty"`
}

// MeSummary is the body returned by GET /admin/me-summary.
type MeSummary struct {
	Email           string `json:"email"`
	Role            string `json:"role"`
	MaxUsersAllowed int    `json:"max_users_allowed"`
	UsersCreated    int    `json:"users_created"`
}

// StatusMessage is the generic {"message": ...} acknowledgment body.
type StatusMessage struct {
	Message string `json:"message"`
}
