package model

import "github.com/vaultpass/passmeter/internal/strength"

// StrengthRequest represents a password strength check request.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents the scored result of a strength check.
type StrengthResponse struct {
	Score       int                   `json:"score"`
	MaxScore    int                   `json:"max_score"`
	Band        string                `json:"band"`
	Progress    float64               `json:"progress"`
	Suggestions []strength.Suggestion `json:"suggestions"`
}
