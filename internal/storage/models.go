package storage

import (
	"context"
	"time"
)

type Account struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Session struct {
	Username   string
	LoggedInAt time.Time
}

// BlobStore persists one opaque state snapshot per key.
type BlobStore interface {
	// Get returns ok=false when nothing is stored under key.
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)
	// Put replaces the blob, keeping the old one as the previous snapshot.
	Put(ctx context.Context, key string, blob []byte) error
	// Restore swaps the previous snapshot back in. ok=false when there is none.
	Restore(ctx context.Context, key string) (ok bool, err error)
}
