package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Note is a saved free-text note.
type Note struct {
	Key       string
	Body      string
	UpdatedAt time.Time
}

// NoteRepository defines DB operations for notes.
type NoteRepository interface {
	Get(ctx context.Context, key string) (*Note, error)
	Save(ctx context.Context, key, body string) (*Note, error)
}

// PostgresNoteRepository is an implementation of NoteRepository using PostgreSQL.
type PostgresNoteRepository struct {
	db *sql.DB
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository.
func NewPostgresNoteRepository(db *sql.DB) NoteRepository {
	return &PostgresNoteRepository{db: db}
}

// Get returns the note stored under key, or (nil, nil) when there is none.
func (r *PostgresNoteRepository) Get(ctx context.Context, key string) (*Note, error) {
	query := `SELECT key, body, updated_at FROM notes WHERE key=$1`

	var n Note
	err := r.db.QueryRowContext(ctx, query, key).Scan(&n.Key, &n.Body, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &n, nil
}

// Save creates or replaces the note stored under key.
func (r *PostgresNoteRepository) Save(ctx context.Context, key, body string) (*Note, error) {
	query := `INSERT INTO notes (key, body, updated_at)
              VALUES ($1, $2, NOW())
              ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
              RETURNING key, body, updated_at`

	var n Note
	if err := r.db.QueryRowContext(ctx, query, key, body).Scan(&n.Key, &n.Body, &n.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}
	return &n, nil
}
