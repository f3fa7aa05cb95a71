package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StateRepo is the SQLite BlobStore.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

func (r *StateRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT blob FROM game_states WHERE username = ?`, key)
	var blob string
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("state get: %w", err)
	}
	return []byte(blob), true, nil
}

func (r *StateRepo) Put(ctx context.Context, key string, blob []byte) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO game_states (username, blob, previous_blob, updated_at)
			VALUES (?, ?, NULL, ?)
			ON CONFLICT(username) DO UPDATE SET
				previous_blob = game_states.blob,
				blob = excluded.blob,
				updated_at = excluded.updated_at
		`, key, string(blob), time.Now().UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("state put: %w", err)
	}
	return nil
}

func (r *StateRepo) Restore(ctx context.Context, key string) (bool, error) {
	var restored bool
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `SELECT previous_blob FROM game_states WHERE username = ?`, key)
		var prev sql.NullString
		if err := row.Scan(&prev); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return err
		}
		if !prev.Valid {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE game_states
			SET blob = previous_blob, previous_blob = NULL, updated_at = ?
			WHERE username = ?
		`, time.Now().UTC(), key); err != nil {
			return err
		}
		restored = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("state restore: %w", err)
	}
	return restored, nil
}

// Delete removes the stored state for key.
func (r *StateRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM game_states WHERE username = ?`, key); err != nil {
		return fmt.Errorf("state delete: %w", err)
	}
	return nil
}
