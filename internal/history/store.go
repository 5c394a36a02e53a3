// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of export attempts. The ledger is
// an audit trail only; nothing reads it to decide whether to export.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/nbexport/pkg/types"
)

const (
	dbFile       = "history.db"
	defaultLimit = 20
)

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS exports (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			notebook TEXT NOT NULL,
			output TEXT NOT NULL,
			status TEXT NOT NULL,
			diagnostic TEXT,
			duration_ms INTEGER,
			exported_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exports_notebook ON exports(notebook)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one export attempt.
func (s *Store) Record(rec types.ExportRecord) error {
	exportedAt := rec.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO exports (notebook, output, status, diagnostic, duration_ms, exported_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Notebook, rec.Output, string(rec.Status), rec.Diagnostic,
		rec.Duration.Milliseconds(), exportedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording export of %s: %w", rec.Notebook, err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first. A non-positive limit
// means the default of 20.
func (s *Store) Recent(limit int) ([]types.ExportRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.Query(
		`SELECT notebook, output, status, COALESCE(diagnostic, ''), duration_ms, exported_at
		 FROM exports ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.ExportRecord
	for rows.Next() {
		var (
			rec        types.ExportRecord
			status     string
			durationMS int64
			exportedAt string
		)
		if err := rows.Scan(&rec.Notebook, &rec.Output, &status, &rec.Diagnostic, &durationMS, &exportedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Status = types.ExportStatus(status)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, exportedAt); err == nil {
			rec.ExportedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
