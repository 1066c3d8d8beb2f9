package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaultpass/passmeter/internal/history"
	"github.com/vaultpass/passmeter/internal/metrics"
	"github.com/vaultpass/passmeter/internal/model"
	"github.com/vaultpass/passmeter/internal/strength"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d bytes", history.MaxValueBytes)
)

// StrengthService handles password strength checks.
type StrengthService struct {
	history *HistoryService
	metrics *metrics.Metrics
}

// NewStrengthService creates a new StrengthService. Both arguments may be nil.
func NewStrengthService(hist *HistoryService, m *metrics.Metrics) *StrengthService {
	return &StrengthService{history: hist, metrics: m}
}

// Check scores the password and records it in the session's history.
// Empty passwords and passwords longer than history.MaxValueBytes are rejected.
func (s *StrengthService) Check(ctx context.Context, sessionID string, req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}
	if len(req.Password) > history.MaxValueBytes {
		return model.StrengthResponse{}, ErrPasswordTooLong
	}

	report := strength.Evaluate(req.Password)
	s.metrics.ObserveEvaluation(string(report.Band()))
	s.history.Record(ctx, sessionID, history.ModeStrength, req.Password)

	return reportToResponse(report), nil
}

func reportToResponse(r strength.Report) model.StrengthResponse {
	return model.StrengthResponse{
		Score:       r.Score,
		MaxScore:    strength.MaxScore,
		Band:        string(r.Band()),
		Progress:    r.Progress(),
		Suggestions: r.Suggestions,
	}
}
