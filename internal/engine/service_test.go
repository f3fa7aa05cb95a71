package engine

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liferpg/internal/storage"
)

func newTestService(t *testing.T) (*Service, *storage.StateRepo, *FakeClock) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	eng, clock := newTestEngine()
	repo := storage.NewStateRepo(db)
	return NewService(repo, eng, nil), repo, clock
}

func TestService_FirstRunCreatesAndPersists(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	st, _, err := svc.State(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Player.Level)

	_, ok, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok, "usernames are normalized")
}

func TestService_DispatchSavesOnlyWhenApplied(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	out, err := svc.Dispatch(ctx, "alice", TrackWater{Glasses: 2})
	require.NoError(t, err)
	require.True(t, out.Applied)

	st, _, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Player.WaterIntakeToday)

	before, _, _ := repo.Get(ctx, "alice")
	out, err = svc.Dispatch(ctx, "alice", Withdraw{Amount: 1000})
	require.NoError(t, err)
	assert.False(t, out.Applied)
	after, _, _ := repo.Get(ctx, "alice")
	assert.Equal(t, before, after)
}

func TestService_CorruptBlobResets(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	for _, blob := range []string{`{not json`, `{}`} {
		require.NoError(t, repo.Put(ctx, "alice", []byte(blob)))
		st, _, err := svc.State(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1, st.Player.Level)
		assert.Equal(t, DateKey(testStart), st.LastResetDate)
	}
}

func TestService_RolloverGateRunsOncePerDay(t *testing.T) {
	ctx := context.Background()
	svc, _, clock := newTestService(t)

	st, _, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	for _, q := range st.Quests {
		if q.Kind == QuestDaily {
			_, err := svc.Dispatch(ctx, "alice", CompleteQuest{ID: q.ID})
			require.NoError(t, err)
		}
	}

	clock.AdvanceDays(1)
	out, err := svc.Dispatch(ctx, "alice", TrackWater{Glasses: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.State.Player.Streak)

	st, _, err = svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Player.Streak, "second read the same day does not roll over again")
	assert.Equal(t, 1, st.Player.WaterIntakeToday)
}

func TestService_Undo(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Dispatch(ctx, "alice", TrackWater{Glasses: 2})
	require.NoError(t, err)
	_, err = svc.Dispatch(ctx, "alice", TrackWater{Glasses: 3})
	require.NoError(t, err)

	ok, err := svc.Undo(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)

	st, _, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Player.WaterIntakeToday)
}

func TestService_EmptyUser(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, _, err := svc.State(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoUser)
}

type failingStore struct{ storage.BlobStore }

func (failingStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (failingStore) Put(context.Context, string, []byte) error       { return errors.New("disk full") }

func TestService_SaveFailureIsReturned(t *testing.T) {
	eng, _ := newTestEngine()
	svc := NewService(failingStore{}, eng, nil)
	_, _, err := svc.State(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save state")
}

func TestService_ConcurrentDispatchKeepsEveryUpdate(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	_, _, err := svc.State(ctx, "alice")
	require.NoError(t, err)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Dispatch(ctx, "alice", TrackWater{Glasses: 1}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	st, _, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, n, st.Player.WaterIntakeToday)
}
