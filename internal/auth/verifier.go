package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	PolicyBcrypt = "bcrypt"
	PolicyPlain  = "plain"
)

var errMismatch = errors.New("password mismatch")

// Verifier hashes new passwords and checks submitted ones.
type Verifier interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(b), nil
}

func (v BcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// PlainVerifier stores passwords as-is. Only for accounts created before hashing.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) { return password, nil }

func (PlainVerifier) Compare(hash, password string) error {
	if subtle.ConstantTimeCompare([]byte(hash), []byte(password)) != 1 {
		return errMismatch
	}
	return nil
}

// NewVerifier returns the verifier for a policy name.
func NewVerifier(policy string) (Verifier, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyBcrypt:
		return BcryptVerifier{}, nil
	case PolicyPlain:
		return PlainVerifier{}, nil
	default:
		return nil, fmt.Errorf("unknown auth policy %q (bcrypt|plain)", policy)
	}
}

func isBcryptHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))
	return err == nil
}
