// Package repository provides data access for houses, rooms, materials,
// and construction systems over SQLite. Repositories drive the model's
// public setters; the model itself knows nothing about persistence.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a row lookup by id or name yields nothing.
var ErrNotFound = errors.New("not found")

// execer abstracts over *sql.DB and *sql.Tx so repository writes can join
// a caller's transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// pickExecer returns tx when non-nil, the plain connection otherwise.
func pickExecer(db *sql.DB, tx *sql.Tx) execer {
	if tx != nil {
		return tx
	}
	return db
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullableID(id *string) any {
	if id == nil {
		return nil
	}
	return *id
}
