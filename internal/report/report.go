// Package report keeps an audit log of applied conversions in a local
// SQLite database, so a reviewer can check after the fact what was changed
// where, and under which mode.
package report

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded conversion.
type Entry struct {
	SourceFile  string
	Part        string
	Ordinal     int
	Original    string
	Replacement string
	Mode        string
}

// Store is an open report database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the report database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimPrefix(path, "sqlite://")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening report database: %w", err)
	}

	// WAL keeps concurrent readers cheap
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a batch of entries in one transaction.
func (s *Store) Record(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO conversions (source_file, part, ordinal, original, replacement, mode)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.SourceFile, e.Part, e.Ordinal, e.Original, e.Replacement, e.Mode); err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}
	}
	return tx.Commit()
}

// CountByFile returns how many conversions are recorded for a source file.
func (s *Store) CountByFile(ctx context.Context, sourceFile string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversions WHERE source_file = ?
	`, sourceFile).Scan(&count)
	return count, err
}

// ByFile returns the recorded conversions for a source file in insertion
// order.
func (s *Store) ByFile(ctx context.Context, sourceFile string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source_file, part, ordinal, original, replacement, mode
		FROM conversions
		WHERE source_file = ?
		ORDER BY id
	`, sourceFile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SourceFile, &e.Part, &e.Ordinal, &e.Original, &e.Replacement, &e.Mode); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
