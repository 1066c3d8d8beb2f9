package model

import "time"

// SessionResponse carries the bearer token that scopes history to one client.
type SessionResponse struct {
	Token     string    `json:"token"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TipsResponse lists password hygiene tips.
type TipsResponse struct {
	Tips []Tip `json:"tips"`
}

// Tip is a titled piece of advice.
type Tip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}
