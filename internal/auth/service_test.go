package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"liferpg/internal/storage"
)

func newAuthServiceForTests(t *testing.T, v Verifier) (*Service, *storage.AccountRepo) {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	accounts := storage.NewAccountRepo(db)
	return NewService(accounts, storage.NewSessionRepo(db), v, nil), accounts
}

func TestRegisterAndLogin_Bcrypt(t *testing.T) {
	ctx := context.Background()
	svc, accounts := newAuthServiceForTests(t, BcryptVerifier{Cost: bcrypt.MinCost})

	a, err := svc.Register(ctx, "  Alice ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", a.Username)
	assert.NotEqual(t, "hunter2", a.PasswordHash)

	stored, err := accounts.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, isBcryptHash(stored.PasswordHash))

	cur, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", cur, "register logs in")

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	assert.ErrorIs(t, svc.Login(ctx, "alice", "wrong"), ErrInvalidCredentials)
	require.NoError(t, svc.Login(ctx, "ALICE", "hunter2"))
	cur, _ = svc.Current(ctx)
	assert.Equal(t, "alice", cur)
}

func TestRegister_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthServiceForTests(t, PlainVerifier{})

	_, err := svc.Register(ctx, "", "x")
	assert.ErrorIs(t, err, ErrMissingFields)
	_, err = svc.Register(ctx, "bob", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "bob", "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "BOB", "pw2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newAuthServiceForTests(t, PlainVerifier{})
	assert.ErrorIs(t, svc.Login(context.Background(), "ghost", "pw"), ErrInvalidCredentials)
}

func TestLogin_UpgradesLegacyPlainHash(t *testing.T) {
	ctx := context.Background()
	svc, accounts := newAuthServiceForTests(t, BcryptVerifier{Cost: bcrypt.MinCost})
	require.NoError(t, accounts.Insert(ctx, storage.Account{Username: "old", PasswordHash: "secret", CreatedAt: time.Now()}))

	assert.ErrorIs(t, svc.Login(ctx, "old", "nope"), ErrInvalidCredentials)
	require.NoError(t, svc.Login(ctx, "old", "secret"))

	a, err := accounts.Get(ctx, "old")
	require.NoError(t, err)
	assert.True(t, isBcryptHash(a.PasswordHash))
	require.NoError(t, svc.Login(ctx, "old", "secret"))
}

func TestNewVerifier(t *testing.T) {
	v, err := NewVerifier("")
	require.NoError(t, err)
	assert.IsType(t, BcryptVerifier{}, v)

	v, err = NewVerifier("PLAIN")
	require.NoError(t, err)
	assert.IsType(t, PlainVerifier{}, v)

	_, err = NewVerifier("md5")
	assert.Error(t, err)
}
