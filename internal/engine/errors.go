package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownBoss is returned by boss checks for an id not on the roster.
var ErrUnknownBoss = errors.New("unknown boss")

// GateError indicates a boss is locked behind a required streak.
// This is returned by gate checks and should be shown to the user.
type GateError struct {
	Boss           string
	RequiredStreak int
	CurrentStreak  int
}

func (e GateError) Error() string {
	return fmt.Sprintf("%s requires a %d-day streak (currently %d)", e.Boss, e.RequiredStreak, e.CurrentStreak)
}
