// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// Nothing here is persisted — every value lives for a single request and is
// discarded once the response is written.
package models

// Mode selects which instruction template a request is dispatched with.
// Go Pattern: We use string constants instead of enums (Go doesn't have enums).
type Mode string

const (
	ModeAnalyze        Mode = "analyze"
	ModeATSScore       Mode = "ats_score"
	ModeCoverLetter    Mode = "cover_letter"
	ModeTailoredResume Mode = "tailored_resume"
)

// AllModes lists every mode in the order the buttons are shown.
var AllModes = []Mode{ModeAnalyze, ModeATSScore, ModeCoverLetter, ModeTailoredResume}

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	for _, known := range AllModes {
		if m == known {
			return true
		}
	}
	return false
}

// --- Request/Response DTOs ---

// AnalysisResponse is returned by POST /api/v1/analyses.
type AnalysisResponse struct {
	RequestID  string `json:"request_id"`
	Mode       Mode   `json:"mode"`
	Label      string `json:"label"` // e.g. "Match Percentage & Recommendations"
	Text       string `json:"text"`  // Generated text, verbatim
	Model      string `json:"model"`
	PageCount  int    `json:"page_count"`
	WordCount  int    `json:"word_count"` // Words in the extracted resume text
	DurationMS int64  `json:"duration_ms"`
}

// ModeInfo describes one available action for GET /api/v1/modes.
type ModeInfo struct {
	Mode   Mode   `json:"mode"`
	Button string `json:"button"`
	Label  string `json:"label"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
