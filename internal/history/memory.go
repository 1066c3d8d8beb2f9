package history

import (
	"context"
	"sync"
	"time"
)

type session struct {
	log      *Log
	lastSeen time.Time
}

// MemoryStore keeps a Log per session in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	sessions map[string]*session
}

// NewMemoryStore returns a store whose logs hold capacity entries per mode.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		capacity: capacity,
		sessions: make(map[string]*session),
	}
}

// Append records e for sessionID under mode.
func (s *MemoryStore) Append(_ context.Context, sessionID string, mode Mode, e Entry) error {
	if len(e.Value) > MaxValueBytes {
		return ErrValueTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{log: NewLog(s.capacity)}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = time.Now()
	return sess.log.Add(mode, e)
}

// Recent returns sessionID's entries for mode, most recent first.
func (s *MemoryStore) Recent(_ context.Context, sessionID string, mode Mode) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		if _, err := ParseMode(string(mode)); err != nil {
			return nil, err
		}
		return []Entry{}, nil
	}
	sess.lastSeen = time.Now()
	return sess.log.Recent(mode)
}

// Clear drops every entry of sessionID.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// Prune drops sessions not used since before and reports how many were removed.
func (s *MemoryStore) Prune(before time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(before) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
