package engine

import (
	"math"
)

const (
	// thresholdOffset and thresholdScale shape the level curve:
	// XP to next level = floor(sqrt(level + offset) * scale).
	thresholdOffset = 14.795918
	thresholdScale  = 280.0

	BaseInventorySlots = 3
	LevelsPerSlot      = 10
)

// XPThreshold returns the XP needed to advance from level to level+1.
func XPThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(math.Sqrt(float64(level)+thresholdOffset) * thresholdScale))
}

// InventorySlotsForLevel derives the inventory size from the player level.
func InventorySlotsForLevel(level int) int {
	if level < 0 {
		level = 0
	}
	return BaseInventorySlots + level/LevelsPerSlot
}

// EffectiveXP scales a raw delta by the day multiplier, truncating toward zero.
func EffectiveXP(xpDelta int, multiplier float64) int {
	if multiplier <= 0 {
		multiplier = 1
	}
	return int(float64(xpDelta) * multiplier)
}

// ApplyReward returns p with the XP and coin deltas applied.
//
// XP never drops below zero and never causes a level-down. The level loop
// carries the remainder over so one large reward can span several levels.
// Coins are not clamped; callers validate balances first.
func ApplyReward(p Player, xpDelta, coinDelta int) Player {
	if p.Level < 1 {
		p.Level = 1
	}
	eff := EffectiveXP(xpDelta, p.NextDayXPMultiplier)

	xp := p.XP + eff
	if xp < 0 {
		xp = 0
	}
	for xp >= XPThreshold(p.Level) {
		xp -= XPThreshold(p.Level)
		p.Level++
	}
	p.XP = xp

	if eff > 0 {
		p.TotalXP += eff
		p.EarnedXPToday += eff
	}
	p.CoinsActive += coinDelta
	if coinDelta > 0 {
		p.EarnedCoinsToday += coinDelta
	}

	p.InventorySlots = InventorySlotsForLevel(p.Level)
	return p
}

// grant applies a reward to the state and appends level-up notices.
func grant(s *GameState, xpDelta, coinDelta int) []Notice {
	before := s.Player.Level
	s.Player = ApplyReward(s.Player, xpDelta, coinDelta)
	if s.Player.Level > before {
		return []Notice{notice(NoticeLevelUp, "Level up! You are now level %d.", s.Player.Level)}
	}
	return nil
}
