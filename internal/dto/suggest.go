package dto

import "STYLEMATE_BACK-END/internal/suggest"

// SuggestRequest represents the request payload for an outfit suggestion
type SuggestRequest struct {
	Event   string `json:"event" validate:"required"`
	Clothes string `json:"clothes" validate:"required"`
	UseAI   bool   `json:"use_ai"`
}

// SuggestResponse represents an outfit suggestion.
//
// Text always carries the full suggestion: the composed four-line
// rendering for rule-based results, or the raw model output for AI
// results. Suggestion is only populated for rule-based results.
type SuggestResponse struct {
	Suggestion *suggest.Suggestion `json:"suggestion,omitempty"`
	Text       string              `json:"text"`
	Source     string              `json:"source"` // "rules" or "ai"
	Notice     string              `json:"notice,omitempty"`
}
