package repository

import (
	"bytes"
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vaultpass/passmeter/internal/crypto"
	"github.com/vaultpass/passmeter/internal/history"
)

// prefixSealer is a reversible stand-in for crypto.Sealer.
type prefixSealer struct{}

var errBadSeal = errors.New("bad seal")

func (prefixSealer) Seal(p []byte) ([]byte, error) {
	return append([]byte("sealed:"), p...), nil
}

func (prefixSealer) Open(s []byte) ([]byte, error) {
	if !bytes.HasPrefix(s, []byte("sealed:")) {
		return nil, errBadSeal
	}
	return s[len("sealed:"):], nil
}

const sessionID = "2b1f7c3e-1d4a-4c1e-9a77-0c9d9e3f5a10"

func newMockRepo(t *testing.T) (*HistoryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHistoryRepository(db, prefixSealer{}, 10), mock
}

func TestHistoryAppend(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertHistoryQuery)).
		WithArgs(sessionID, "random", []byte("sealed:Xy7!abcD"), created).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(trimHistoryQuery)).
		WithArgs(sessionID, "random", sessionID, "random", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Append(context.Background(), sessionID, history.ModeRandom, history.Entry{Value: "Xy7!abcD", CreatedAt: created})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryAppend_InsertFailsRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertHistoryQuery)).WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.Append(context.Background(), sessionID, history.ModeThemed, history.Entry{Value: "vAuLt1234!"})
	if !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryAppend_UnknownMode(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.Append(context.Background(), sessionID, "ai", history.Entry{Value: "x"})
	if !errors.Is(err, history.ErrUnknownMode) {
		t.Fatalf("want %v, got %v", history.ErrUnknownMode, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryRecent(t *testing.T) {
	repo, mock := newMockRepo(t)
	newer := time.Date(2026, 10, 19, 12, 5, 0, 0, time.UTC)
	older := newer.Add(-time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(recentHistoryQuery)).
		WithArgs(sessionID, "strength", 10).
		WillReturnRows(sqlmock.NewRows([]string{"sealed_value", "created_at"}).
			AddRow([]byte("sealed:second"), newer).
			AddRow([]byte("sealed:first"), older))

	got, err := repo.Recent(context.Background(), sessionID, history.ModeStrength)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Value != "second" || got[1].Value != "first" {
		t.Fatalf("want [second first], got %+v", got)
	}
	if !got[0].CreatedAt.Equal(newer) {
		t.Fatalf("want created_at %v, got %v", newer, got[0].CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryRecent_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(recentHistoryQuery)).
		WithArgs(sessionID, "themed", 10).
		WillReturnRows(sqlmock.NewRows([]string{"sealed_value", "created_at"}))

	got, err := repo.Recent(context.Background(), sessionID, history.ModeThemed)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", got)
	}
}

func TestHistoryRecent_CorruptValueSkipped(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(recentHistoryQuery)).
		WithArgs(sessionID, "strength", 10).
		WillReturnRows(sqlmock.NewRows([]string{"sealed_value", "created_at"}).
			AddRow([]byte("sealed:kept"), time.Now()).
			AddRow([]byte("garbage"), time.Now()))

	got, err := repo.Recent(context.Background(), sessionID, history.ModeStrength)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Value != "kept" {
		t.Fatalf("want [kept], got %+v", got)
	}
}

// sealedValue matches a sealed_value argument that fits the column and opens to want.
type sealedValue struct {
	sealer *crypto.Sealer
	want   string
}

func (a sealedValue) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	if !ok || len(b) > maxSealedBytes {
		return false
	}
	plain, err := a.sealer.Open(b)
	return err == nil && string(plain) == a.want
}

func newTestSealer(t *testing.T) *crypto.Sealer {
	t.Helper()
	sealer, err := crypto.NewSealerWithParams("test-key", crypto.KeyParams{Memory: 1024, Iterations: 1, Parallelism: 1})
	if err != nil {
		t.Fatal(err)
	}
	return sealer
}

func TestHistoryAppend_SealedLongestValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	sealer := newTestSealer(t)
	repo := NewHistoryRepository(db, sealer, 10)
	value := strings.Repeat("aA1!", history.MaxValueBytes/4)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(insertHistoryQuery)).
		WithArgs(sessionID, "strength", sealedValue{sealer: sealer, want: value}, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(trimHistoryQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.Append(context.Background(), sessionID, history.ModeStrength, history.Entry{Value: value}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryAppend_ValueTooLarge(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	repo := NewHistoryRepository(db, newTestSealer(t), 10)
	value := strings.Repeat("aA1!", 150)

	err = repo.Append(context.Background(), sessionID, history.ModeStrength, history.Entry{Value: value})
	if !errors.Is(err, history.ErrValueTooLarge) {
		t.Fatalf("want %v, got %v", history.ErrValueTooLarge, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestHistoryClear(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(clearHistoryQuery)).
		WithArgs(sessionID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.Clear(context.Background(), sessionID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(schema)).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestNewHistoryRepository_DefaultCapacity(t *testing.T) {
	repo := NewHistoryRepository(nil, prefixSealer{}, 0)
	if repo.capacity != history.DefaultCapacity {
		t.Fatalf("want capacity %d, got %d", history.DefaultCapacity, repo.capacity)
	}
}
