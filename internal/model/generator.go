package model

// GenerateRequest represents a random password generation request.
// A zero Length selects the configured minimum.
type GenerateRequest struct {
	Length int `json:"length"`
}

// ThemedRequest represents a themed password generation request.
type ThemedRequest struct {
	Strict bool `json:"strict"`
}

// GenerateResponse represents a password generation response, scored with the
// same rules used by the strength check.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Score    int    `json:"score"`
	Band     string `json:"band"`
	Strict   *bool  `json:"strict,omitempty"`
}
