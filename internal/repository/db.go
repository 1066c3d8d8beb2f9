package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a MySQL connection pool with the given DSN and verifies it is reachable.
// The DSN must include parseTime=true.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

const schema = `
	CREATE TABLE IF NOT EXISTS password_history (
		id           BIGINT AUTO_INCREMENT PRIMARY KEY,
		session_id   CHAR(36)     NOT NULL,
		mode         VARCHAR(16)  NOT NULL,
		sealed_value VARBINARY(512) NOT NULL,
		created_at   DATETIME(6)  NOT NULL,
		INDEX idx_history_session_mode (session_id, mode, id)
	)`

// Migrate creates the tables used by this package if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating password_history: %w", err)
	}
	return nil
}
