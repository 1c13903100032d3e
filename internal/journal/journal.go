// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists a history of assembly runs in a local sqlite
// database, one row per run with its inputs, outcome, and diagnostics.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "docx2latex.db"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	manuscript TEXT NOT NULL,
	template TEXT NOT NULL,
	style TEXT NOT NULL,
	output_path TEXT NOT NULL,
	status TEXT NOT NULL,
	unresolved TEXT NOT NULL,
	warnings TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Record is one assembly run as stored in the journal.
type Record struct {
	ID         int64     `json:"id"`
	Manuscript string    `json:"manuscript"`
	Template   string    `json:"template"`
	Style      string    `json:"style"`
	OutputPath string    `json:"output_path"`
	Status     string    `json:"status"`
	Unresolved []string  `json:"unresolved,omitempty"`
	Warnings   []string  `json:"warnings,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is a sqlite-backed run journal.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database under dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}
	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add inserts a run record and returns its assigned id.
func (s *Store) Add(ctx context.Context, rec Record) (int64, error) {
	unresolved, err := json.Marshal(rec.Unresolved)
	if err != nil {
		return 0, fmt.Errorf("encoding unresolved keys: %w", err)
	}
	warnings, err := json.Marshal(rec.Warnings)
	if err != nil {
		return 0, fmt.Errorf("encoding warnings: %w", err)
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (manuscript, template, style, output_path, status, unresolved, warnings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Manuscript, rec.Template, rec.Style, rec.OutputPath, rec.Status,
		string(unresolved), string(warnings), createdAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting run record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, manuscript, template, style, output_path, status, unresolved, warnings, created_at
		 FROM runs WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading run %d: %w", id, err)
	}
	return rec, nil
}

// List returns all runs, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, manuscript, template, style, output_path, status, unresolved, warnings, created_at
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var rec Record
	var unresolved, warnings, createdAt string
	err := row.Scan(&rec.ID, &rec.Manuscript, &rec.Template, &rec.Style, &rec.OutputPath,
		&rec.Status, &unresolved, &warnings, &createdAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(unresolved), &rec.Unresolved); err != nil {
		return nil, fmt.Errorf("decoding unresolved keys: %w", err)
	}
	if err := json.Unmarshal([]byte(warnings), &rec.Warnings); err != nil {
		return nil, fmt.Errorf("decoding warnings: %w", err)
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &rec, nil
}
