package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrAccountExists is returned by Insert when the username is taken.
var ErrAccountExists = errors.New("account already exists")

type AccountRepo struct {
	db *sql.DB
}

func NewAccountRepo(db *sql.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

func (r *AccountRepo) Get(ctx context.Context, username string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT username, password_hash, created_at FROM accounts WHERE username = ?`, username)
	var a Account
	if err := row.Scan(&a.Username, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("account get: %w", err)
	}
	return &a, nil
}

func (r *AccountRepo) Insert(ctx context.Context, a Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (username, password_hash, created_at) VALUES (?, ?, ?)
	`, a.Username, a.PasswordHash, a.CreatedAt.UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrAccountExists
		}
		return fmt.Errorf("account insert: %w", err)
	}
	return nil
}

// UpdateHash replaces the stored password hash, used when upgrading legacy hashes.
func (r *AccountRepo) UpdateHash(ctx context.Context, username, hash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE accounts SET password_hash = ? WHERE username = ?`, hash, username)
	if err != nil {
		return fmt.Errorf("account update hash: %w", err)
	}
	return nil
}

func (r *AccountRepo) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username FROM accounts ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("account list: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("account scan: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("account rows: %w", err)
	}
	return out, nil
}
