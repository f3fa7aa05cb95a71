package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liferpg/internal/auth"
	"liferpg/internal/config"
	"liferpg/internal/engine"
)

func openTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		DBPath:       filepath.Join(t.TempDir(), "app.db"),
		StateBackend: config.BackendSQLite,
		AuthPolicy:   auth.PolicyPlain,
		Seed:         7,
	}
	a, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestApp_RequiresLogin(t *testing.T) {
	a := openTestApp(t)
	_, err := a.Dispatch(context.Background(), engine.TrackWater{Glasses: 1})
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestApp_DispatchForActiveUser(t *testing.T) {
	ctx := context.Background()
	a := openTestApp(t)

	_, err := a.Auth.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	out, err := a.Dispatch(ctx, engine.TrackWater{Glasses: 4})
	require.NoError(t, err)
	assert.True(t, out.Applied)

	user, st, _, err := a.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
	assert.Equal(t, 4, st.Player.WaterIntakeToday)

	// states are per user
	_, err = a.Auth.Register(ctx, "bob", "pw")
	require.NoError(t, err)
	_, st, _, err = a.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, st.Player.WaterIntakeToday)
}

func TestApp_OracleFallsBackWithoutKey(t *testing.T) {
	a := openTestApp(t)
	got := a.Oracle.Motivation(context.Background(), 1, nil)
	assert.NotEmpty(t, got)
}

func TestApp_BadRulesPath(t *testing.T) {
	cfg := config.Config{
		DBPath:       filepath.Join(t.TempDir(), "app.db"),
		StateBackend: config.BackendSQLite,
		RulesPath:    filepath.Join(t.TempDir(), "nope.yaml"),
	}
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}
