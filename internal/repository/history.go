package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vaultpass/passmeter/internal/history"
)

// Sealer encrypts values at rest. *crypto.Sealer satisfies it.
type Sealer interface {
	Seal(plaintext []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}

// HistoryRepository persists per-session history in MySQL.
// Values are sealed before insert and each (session, mode) pair is trimmed to capacity.
type HistoryRepository struct {
	db       *sql.DB
	sealer   Sealer
	capacity int
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(db *sql.DB, sealer Sealer, capacity int) *HistoryRepository {
	if capacity < 1 {
		capacity = history.DefaultCapacity
	}
	return &HistoryRepository{db: db, sealer: sealer, capacity: capacity}
}

// maxSealedBytes is the width of password_history.sealed_value. It leaves room
// for history.MaxValueBytes plus the sealing overhead.
const maxSealedBytes = 512

const (
	insertHistoryQuery = `INSERT INTO password_history (session_id, mode, sealed_value, created_at) VALUES (?, ?, ?, ?)`

	// MySQL rejects LIMIT inside IN (...), so the kept ids go through a derived table.
	trimHistoryQuery = `DELETE FROM password_history
		WHERE session_id = ? AND mode = ? AND id NOT IN (
			SELECT id FROM (
				SELECT id FROM password_history WHERE session_id = ? AND mode = ? ORDER BY id DESC LIMIT ?
			) AS keep_rows
		)`

	recentHistoryQuery = `SELECT sealed_value, created_at FROM password_history
		WHERE session_id = ? AND mode = ? ORDER BY id DESC LIMIT ?`

	clearHistoryQuery = `DELETE FROM password_history WHERE session_id = ?`
)

// Append seals and stores e, then drops entries beyond capacity.
func (r *HistoryRepository) Append(ctx context.Context, sessionID string, mode history.Mode, e history.Entry) error {
	if _, err := history.ParseMode(string(mode)); err != nil {
		return err
	}

	if len(e.Value) > history.MaxValueBytes {
		return history.ErrValueTooLarge
	}

	sealed, err := r.sealer.Seal([]byte(e.Value))
	if err != nil {
		return fmt.Errorf("sealing history entry: %w", err)
	}
	if len(sealed) > maxSealedBytes {
		return history.ErrValueTooLarge
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertHistoryQuery, sessionID, string(mode), sealed, e.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, trimHistoryQuery, sessionID, string(mode), sessionID, string(mode), r.capacity); err != nil {
		return err
	}

	return tx.Commit()
}

// Recent returns up to capacity entries for the session and mode, most recent first.
// Entries that fail to open are logged and left out.
func (r *HistoryRepository) Recent(ctx context.Context, sessionID string, mode history.Mode) ([]history.Entry, error) {
	if _, err := history.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, recentHistoryQuery, sessionID, string(mode), r.capacity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []history.Entry{}
	for rows.Next() {
		var (
			sealed []byte
			e      history.Entry
		)
		if err := rows.Scan(&sealed, &e.CreatedAt); err != nil {
			return nil, err
		}

		value, err := r.sealer.Open(sealed)
		if err != nil {
			slog.Warn("skipping unreadable history entry", "mode", mode, "error", err)
			continue
		}
		e.Value = string(value)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear deletes every entry of the session.
func (r *HistoryRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, clearHistoryQuery, sessionID)
	return err
}
