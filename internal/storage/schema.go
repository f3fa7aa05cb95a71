package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			username TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		// Keyed by account username. previous_blob holds the snapshot before the last write.
		`CREATE TABLE IF NOT EXISTS game_states (
			username TEXT PRIMARY KEY,
			blob TEXT NOT NULL,
			previous_blob TEXT,
			updated_at DATETIME NOT NULL
		);`,
		// Single row: id is always 1.
		`CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			username TEXT NOT NULL,
			logged_in_at DATETIME NOT NULL
		);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
