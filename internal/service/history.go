package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vaultpass/passmeter/internal/history"
	"github.com/vaultpass/passmeter/internal/model"
)

var (
	ErrSessionRequired = errors.New("a session token is required for history")
	ErrUnknownMode     = errors.New("mode must be one of strength, random, themed")
)

// HistoryStore persists per-session history. history.MemoryStore and
// repository.HistoryRepository implement it.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, mode history.Mode, e history.Entry) error
	Recent(ctx context.Context, sessionID string, mode history.Mode) ([]history.Entry, error)
	Clear(ctx context.Context, sessionID string) error
}

// HistoryService records and lists checked and generated passwords.
type HistoryService struct {
	store HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Record stores value for the session. Anonymous callers (empty sessionID)
// are not recorded. Store failures are logged, not returned: the password has
// already been produced for the caller.
func (s *HistoryService) Record(ctx context.Context, sessionID string, mode history.Mode, value string) {
	if s == nil || sessionID == "" {
		return
	}

	err := s.store.Append(ctx, sessionID, mode, history.Entry{Value: value, CreatedAt: s.now()})
	if err != nil {
		slog.Warn("recording history failed", "mode", mode, "error", err)
	}
}

// List returns the session's entries for mode, most recent first.
func (s *HistoryService) List(ctx context.Context, sessionID, mode string) (model.HistoryResponse, error) {
	if sessionID == "" {
		return model.HistoryResponse{}, ErrSessionRequired
	}

	m, err := history.ParseMode(mode)
	if err != nil {
		return model.HistoryResponse{}, ErrUnknownMode
	}

	entries, err := s.store.Recent(ctx, sessionID, m)
	if err != nil {
		return model.HistoryResponse{}, err
	}

	return model.HistoryResponse{
		Mode:    string(m),
		Entries: entriesToResponse(entries),
	}, nil
}

// Clear removes every entry of the session.
func (s *HistoryService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionRequired
	}
	return s.store.Clear(ctx, sessionID)
}

// entriesToResponse converts entries to their API form, never returning nil.
func entriesToResponse(entries []history.Entry) []model.HistoryEntryResponse {
	out := make([]model.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.HistoryEntryResponse{
			Value:     e.Value,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
