package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/model"
)

// SessionService issues anonymous session tokens that scope history.
type SessionService struct {
	jwtSecret string
	jwtExpiry time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(secret string, expiry time.Duration) *SessionService {
	return &SessionService{
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Start creates a new session and its bearer token.
func (s *SessionService) Start() (model.SessionResponse, error) {
	id := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.jwtExpiry)

	token, err := crypto.GenerateToken(id, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.SessionResponse{}, err
	}

	return model.SessionResponse{
		Token:     token,
		SessionID: id,
		ExpiresAt: expiresAt,
	}, nil
}

// Tips returns the password hygiene advice shown alongside the tools.
func Tips() []model.Tip {
	return []model.Tip{
		{Title: "Length", Text: "Use passwords with 8 characters or more."},
		{Title: "Complexity", Text: "Include a mix of letters, numbers, and symbols."},
		{Title: "Avoid Reusing", Text: "Don't reuse passwords across different accounts."},
		{Title: "Password Manager", Text: "Use a password manager to store your passwords securely."},
		{Title: "Two-Factor Authentication (2FA)", Text: "Enable 2FA for an extra layer of security."},
		{Title: "Avoid Common Passwords", Text: "Don't use common passwords like 'password123', 'qwerty', etc."},
		{Title: "Change Regularly", Text: "Change your passwords regularly to keep your accounts secure."},
	}
}
