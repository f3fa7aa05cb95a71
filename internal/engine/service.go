package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"liferpg/internal/storage"
)

// ErrNoUser is returned when a state operation has no username.
var ErrNoUser = errors.New("no user")

// Service is the state store: it loads a user's GameState, runs the
// rollover gate, applies commands and persists the result.
// Calls are serialized: one load-apply-save cycle runs at a time.
type Service struct {
	mu     sync.Mutex
	store  storage.BlobStore
	engine *Engine
	log    *log.Logger
}

func NewService(store storage.BlobStore, eng *Engine, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: store, engine: eng, log: logger}
}

func (s *Service) Engine() *Engine { return s.engine }

func normalizeUser(user string) (string, error) {
	u := strings.TrimSpace(strings.ToLower(user))
	if u == "" {
		return "", ErrNoUser
	}
	return u, nil
}

// load returns the stored state, or a fresh one when absent or unreadable.
func (s *Service) load(ctx context.Context, user string) (GameState, bool, error) {
	blob, ok, err := s.store.Get(ctx, user)
	if err != nil {
		return GameState{}, false, fmt.Errorf("load state: %w", err)
	}
	if !ok {
		s.log.Printf("no state for %q, creating", user)
		return s.engine.NewGameState(), true, nil
	}
	st, err := DecodeState(blob)
	if err != nil {
		s.log.Printf("state for %q unreadable, resetting: %v", user, err)
		return s.engine.NewGameState(), true, nil
	}
	return st, false, nil
}

func (s *Service) save(ctx context.Context, user string, st GameState) error {
	blob, err := EncodeState(st)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, user, blob); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// State returns the current state for user after the rollover gate.
func (s *Service) State(ctx context.Context, user string) (GameState, []Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state(ctx, user)
}

func (s *Service) state(ctx context.Context, user string) (GameState, []Notice, error) {
	user, err := normalizeUser(user)
	if err != nil {
		return GameState{}, nil, err
	}
	st, created, err := s.load(ctx, user)
	if err != nil {
		return GameState{}, nil, err
	}
	out := s.engine.Rollover(st)
	if out.Applied {
		s.log.Printf("rollover for %q: %s -> %s", user, st.LastResetDate, out.State.LastResetDate)
	}
	if created || out.Applied {
		if err := s.save(ctx, user, out.State); err != nil {
			return GameState{}, nil, err
		}
	}
	return out.State, out.Notices, nil
}

// Dispatch applies cmd to user's state and saves when anything changed.
// Rollover notices come first.
func (s *Service) Dispatch(ctx context.Context, user string, cmd Command) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, notices, err := s.state(ctx, user)
	if err != nil {
		return Outcome{}, err
	}
	out := s.engine.Apply(st, cmd)
	if out.Applied {
		user, _ = normalizeUser(user)
		if err := s.save(ctx, user, out.State); err != nil {
			return Outcome{}, err
		}
	} else {
		s.log.Printf("%T for %q was a no-op", cmd, user)
	}
	out.Notices = append(notices, out.Notices...)
	return out, nil
}

// Undo restores the snapshot before the last saved change.
func (s *Service) Undo(ctx context.Context, user string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := normalizeUser(user)
	if err != nil {
		return false, err
	}
	ok, err := s.store.Restore(ctx, user)
	if err != nil {
		return false, fmt.Errorf("undo: %w", err)
	}
	return ok, nil
}

func EncodeState(st GameState) ([]byte, error) {
	blob, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return blob, nil
}

// DecodeState parses a stored blob. A blob without a valid player is an error.
func DecodeState(blob []byte) (GameState, error) {
	var st GameState
	if err := json.Unmarshal(blob, &st); err != nil {
		return GameState{}, fmt.Errorf("decode state: %w", err)
	}
	if st.Player.Level < 1 {
		return GameState{}, errors.New("decode state: missing player")
	}
	if st.Player.Stats == nil {
		st.Player.Stats = map[StatKind]int{}
	}
	if st.Player.NextDayXPMultiplier < 1 {
		st.Player.NextDayXPMultiplier = 1
	}
	return st, nil
}
