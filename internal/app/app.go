// Package app wires configuration, storage and services for the CLI and TUI.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"liferpg/internal/auth"
	"liferpg/internal/config"
	"liferpg/internal/engine"
	"liferpg/internal/oracle"
	"liferpg/internal/storage"
)

// App owns the open resources and the active session.
type App struct {
	Config config.Config
	Logger *log.Logger

	DB     *sql.DB
	Auth   *auth.Service
	Game   *engine.Service
	Oracle *oracle.Oracle

	redis *redis.Client
}

// NewLogger returns a discarding logger unless debug is on.
func NewLogger(debug bool) *log.Logger {
	if debug {
		return log.New(os.Stderr, "lrpg: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

func Open(ctx context.Context, cfg config.Config) (*App, error) {
	logger := NewLogger(cfg.Debug)

	catalog := engine.DefaultCatalog()
	if cfg.RulesPath != "" {
		rules, err := config.LoadRules(cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		catalog = rules.Catalog(catalog)
		logger.Printf("loaded rules from %s", cfg.RulesPath)
	}

	verifier, err := auth.NewVerifier(cfg.AuthPolicy)
	if err != nil {
		return nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Logger: logger, DB: db}

	var store storage.BlobStore = storage.NewStateRepo(db)
	if cfg.StateBackend == config.BackendRedis {
		client, err := storage.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		a.redis = client
		store = storage.NewRedisStore(client)
	}
	logger.Printf("db %s, state backend %s", path, cfg.StateBackend)

	eng := engine.New(engine.RealClock{}, engine.NewRand(cfg.Seed), catalog)
	a.Game = engine.NewService(store, eng, logger)
	a.Auth = auth.NewService(storage.NewAccountRepo(db), storage.NewSessionRepo(db), verifier, logger)

	var gen oracle.Generator
	if g := oracle.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel); g != nil {
		gen = g
	}
	a.Oracle = oracle.New(gen, logger)
	return a, nil
}

// OpenFromEnv parses the environment and opens the app.
func OpenFromEnv(ctx context.Context) (*App, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	return Open(ctx, cfg)
}

func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

// User returns the logged-in username.
func (a *App) User(ctx context.Context) (string, error) {
	u, err := a.Auth.Current(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return "", fmt.Errorf("%w (run `lrpg login` or `lrpg register`)", err)
		}
		return "", err
	}
	return u, nil
}

// State loads the active user's state.
func (a *App) State(ctx context.Context) (string, engine.GameState, []engine.Notice, error) {
	user, err := a.User(ctx)
	if err != nil {
		return "", engine.GameState{}, nil, err
	}
	st, notices, err := a.Game.State(ctx, user)
	if err != nil {
		return "", engine.GameState{}, nil, err
	}
	return user, st, notices, nil
}

// Dispatch runs cmd for the active user.
func (a *App) Dispatch(ctx context.Context, cmd engine.Command) (engine.Outcome, error) {
	user, err := a.User(ctx)
	if err != nil {
		return engine.Outcome{}, err
	}
	return a.Game.Dispatch(ctx, user, cmd)
}
