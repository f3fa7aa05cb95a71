package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SessionRepo stores the single logged-in username.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func (r *SessionRepo) Get(ctx context.Context) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT username, logged_in_at FROM session WHERE id = 1`)
	var s Session
	if err := row.Scan(&s.Username, &s.LoggedInAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("session get: %w", err)
	}
	return &s, nil
}

func (r *SessionRepo) Set(ctx context.Context, username string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (id, username, logged_in_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET username = excluded.username, logged_in_at = excluded.logged_in_at
	`, username, at.UTC())
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
