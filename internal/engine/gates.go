package engine

import "fmt"

// CanFight returns an error when the streak is too short for the boss.
func CanFight(streak int, b Boss) error {
	if streak < b.MinStreak {
		return GateError{Boss: b.Name, RequiredStreak: b.MinStreak, CurrentStreak: streak}
	}
	return nil
}

// CheckBoss looks up a boss and applies the streak gate.
func CheckBoss(s GameState, id string) (Boss, error) {
	b, ok := s.Boss(id)
	if !ok {
		return Boss{}, fmt.Errorf("%w: %q", ErrUnknownBoss, id)
	}
	return b, CanFight(s.Player.Streak, b)
}

// NextBoss returns the weakest boss the streak does not yet unlock.
func NextBoss(s GameState) (Boss, bool) {
	var next Boss
	found := false
	for _, b := range s.Bosses {
		if b.MinStreak <= s.Player.Streak {
			continue
		}
		if !found || b.MinStreak < next.MinStreak {
			next, found = b, true
		}
	}
	return next, found
}

// CanToggleHardcore reports whether hardcore can be switched right now.
func CanToggleHardcore(p Player) bool {
	return !p.SicknessActive
}

// CanPlayQuests reports whether quests can be completed right now.
func CanPlayQuests(p Player) bool {
	return !p.SicknessActive
}
