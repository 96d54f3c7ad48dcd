package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// slotName is the single named slot holding the serialized ledger.
const slotName = "ledger"

// SQLiteBlob keeps the ledger slot in a one-row SQLite table. Same
// whole-blob semantics as FileBlob, with a durable file format underneath.
type SQLiteBlob struct {
	db *sql.DB
}

func NewSQLiteBlob(dbPath string) (*SQLiteBlob, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteBlob{db: db}, nil
}

func (s *SQLiteBlob) Read(ctx context.Context) (string, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM ledger_blob WHERE slot = ?`, slotName,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read ledger slot: %w", err)
	}
	return payload, true, nil
}

func (s *SQLiteBlob) Write(ctx context.Context, payload string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_blob (slot, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		slotName, payload)
	if err != nil {
		return fmt.Errorf("write ledger slot: %w", err)
	}
	return nil
}

func (s *SQLiteBlob) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
