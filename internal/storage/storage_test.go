package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestMigrateCreatesSnapshotColumn(t *testing.T) {
	db := openTestDB(t)
	rows, err := db.QueryContext(context.Background(), `SELECT name FROM pragma_table_info('game_states')`)
	if err != nil {
		t.Fatalf("table info: %v", err)
	}
	defer rows.Close()
	found := false
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan: %v", err)
		}
		if name == "previous_blob" {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if !found {
		t.Fatalf("game_states has no previous_blob column")
	}
}

func TestStateRepoRoundTripAndRestore(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(openTestDB(t))

	if _, ok, err := repo.Get(ctx, "alice"); err != nil || ok {
		t.Fatalf("expected empty, got ok=%v err=%v", ok, err)
	}
	if ok, err := repo.Restore(ctx, "alice"); err != nil || ok {
		t.Fatalf("restore on empty: ok=%v err=%v", ok, err)
	}

	if err := repo.Put(ctx, "alice", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("put 1: %v", err)
	}
	if ok, err := repo.Restore(ctx, "alice"); err != nil || ok {
		t.Fatalf("restore with no previous: ok=%v err=%v", ok, err)
	}
	if err := repo.Put(ctx, "alice", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("put 2: %v", err)
	}

	blob, ok, err := repo.Get(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if string(blob) != `{"v":2}` {
		t.Fatalf("expected v2, got %s", blob)
	}

	ok, err = repo.Restore(ctx, "alice")
	if err != nil || !ok {
		t.Fatalf("restore: ok=%v err=%v", ok, err)
	}
	blob, _, _ = repo.Get(ctx, "alice")
	if string(blob) != `{"v":1}` {
		t.Fatalf("expected v1 after restore, got %s", blob)
	}

	// keys are isolated per user
	if _, ok, _ := repo.Get(ctx, "bob"); ok {
		t.Fatalf("expected no state for bob")
	}
}

func TestAccountRepoInsertAndDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepo(openTestDB(t))

	a := Account{Username: "alice", PasswordHash: "h", CreatedAt: time.Now()}
	if err := repo.Insert(ctx, a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, a); !errors.Is(err, ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	got, err := repo.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.PasswordHash != "h" {
		t.Fatalf("unexpected account: %+v", got)
	}
	if err := repo.UpdateHash(ctx, "alice", "h2"); err != nil {
		t.Fatalf("update hash: %v", err)
	}
	got, _ = repo.Get(ctx, "alice")
	if got.PasswordHash != "h2" {
		t.Fatalf("expected h2, got %q", got.PasswordHash)
	}

	missing, err := repo.Get(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", missing, err)
	}

	names, err := repo.ListUsernames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 || names[0] != "alice" {
		t.Fatalf("unexpected usernames: %v", names)
	}
}

func TestSessionRepoSetGetClear(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo(openTestDB(t))

	s, err := repo.Get(ctx)
	if err != nil || s != nil {
		t.Fatalf("expected no session, got %+v, %v", s, err)
	}
	if err := repo.Set(ctx, "alice", time.Now()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "bob", time.Now()); err != nil {
		t.Fatalf("set again: %v", err)
	}
	s, err = repo.Get(ctx)
	if err != nil || s == nil || s.Username != "bob" {
		t.Fatalf("expected bob, got %+v, %v", s, err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s, _ = repo.Get(ctx)
	if s != nil {
		t.Fatalf("expected cleared session, got %+v", s)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	boom := errors.New("boom")

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO accounts (username, password_hash, created_at) VALUES ('x', 'y', CURRENT_TIMESTAMP)`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	a, err := NewAccountRepo(db).Get(ctx, "x")
	if err != nil || a != nil {
		t.Fatalf("expected rollback, got %+v, %v", a, err)
	}
}

func TestResolveDBPath(t *testing.T) {
	got, err := ResolveDBPath("/tmp/custom.db")
	if err != nil || got != "/tmp/custom.db" {
		t.Fatalf("expected explicit path, got %q, %v", got, err)
	}
	if _, err := os.UserHomeDir(); err != nil {
		t.Skip("no home dir")
	}
	got, err = ResolveDBPath("")
	if err != nil || filepath.Base(got) != ".liferpg.db" {
		t.Fatalf("expected default path, got %q, %v", got, err)
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("LRPG_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LRPG_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client, err := OpenRedis(ctx, addr)
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	defer client.Close()

	key := "test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() { client.Del(ctx, stateKey(key), previousKey(key)) })
	store := NewRedisStore(client)

	if _, ok, err := store.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected empty, got ok=%v err=%v", ok, err)
	}
	if err := store.Put(ctx, key, []byte("a")); err != nil {
		t.Fatalf("put a: %v", err)
	}
	if err := store.Put(ctx, key, []byte("b")); err != nil {
		t.Fatalf("put b: %v", err)
	}
	if ok, err := store.Restore(ctx, key); err != nil || !ok {
		t.Fatalf("restore: ok=%v err=%v", ok, err)
	}
	blob, ok, err := store.Get(ctx, key)
	if err != nil || !ok || string(blob) != "a" {
		t.Fatalf("expected a, got %q ok=%v err=%v", blob, ok, err)
	}
}
