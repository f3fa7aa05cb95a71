package auth

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"liferpg/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMissingFields      = errors.New("username and password are required")
	ErrNotLoggedIn        = errors.New("not logged in")
)

type AccountStore interface {
	Get(ctx context.Context, username string) (*storage.Account, error)
	Insert(ctx context.Context, a storage.Account) error
	UpdateHash(ctx context.Context, username, hash string) error
}

type SessionStore interface {
	Get(ctx context.Context) (*storage.Session, error)
	Set(ctx context.Context, username string, at time.Time) error
	Clear(ctx context.Context) error
}

type Service struct {
	accounts AccountStore
	sessions SessionStore
	verifier Verifier

	logger *log.Logger
	now    func() time.Time
}

func NewService(accounts AccountStore, sessions SessionStore, verifier Verifier, logger *log.Logger) *Service {
	if verifier == nil {
		verifier = BcryptVerifier{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		accounts: accounts,
		sessions: sessions,
		verifier: verifier,
		logger:   logger,
		now:      time.Now,
	}
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, username, password string) (*storage.Account, error) {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	existing, err := s.accounts.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}
	a := storage.Account{Username: username, PasswordHash: hash, CreatedAt: s.now()}
	if err := s.accounts.Insert(ctx, a); err != nil {
		if errors.Is(err, storage.ErrAccountExists) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	s.logger.Printf("registered %q", username)

	if err := s.sessions.Set(ctx, username, s.now()); err != nil {
		return nil, err
	}
	return &a, nil
}

// Login checks the password and records the session.
// Legacy plain hashes are upgraded when the active policy is bcrypt.
func (s *Service) Login(ctx context.Context, username, password string) error {
	username = NormalizeUsername(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}
	a, err := s.accounts.Get(ctx, username)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrInvalidCredentials
	}

	if err := s.compare(ctx, a, password); err != nil {
		s.logger.Printf("failed login for %q", username)
		return ErrInvalidCredentials
	}
	return s.sessions.Set(ctx, username, s.now())
}

func (s *Service) compare(ctx context.Context, a *storage.Account, password string) error {
	_, bcryptPolicy := s.verifier.(BcryptVerifier)
	if !bcryptPolicy || isBcryptHash(a.PasswordHash) {
		return s.verifier.Compare(a.PasswordHash, password)
	}

	if err := (PlainVerifier{}).Compare(a.PasswordHash, password); err != nil {
		return err
	}
	hash, err := s.verifier.Hash(password)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdateHash(ctx, a.Username, hash); err != nil {
		s.logger.Printf("upgrade hash for %q: %v", a.Username, err)
		return nil
	}
	s.logger.Printf("upgraded legacy hash for %q", a.Username)
	return nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// Current returns the logged-in username.
func (s *Service) Current(ctx context.Context) (string, error) {
	sess, err := s.sessions.Get(ctx)
	if err != nil {
		return "", err
	}
	if sess == nil {
		return "", ErrNotLoggedIn
	}
	return sess.Username, nil
}
