package engine

import "time"

const (
	ChallengeWindowDays = 7
	WaterGoalGlasses    = 10
)

// EvaluateChallenge reports whether an auto challenge holds over the last
// seven days ending today. Manual challenges report their stored flag.
func EvaluateChallenge(s GameState, c Challenge, today time.Time) bool {
	days := LastNDays(today, ChallengeWindowDays)
	switch c.Calc {
	case CalcFoodStreak:
		return foodStreak(s.FoodHistory, days)
	case CalcWaterStreak:
		return waterStreak(s, days)
	case CalcHardcoreStreak:
		return hardcoreStreak(s, days)
	case CalcJoker:
		return jokerClean(s.FoodHistory, days)
	case CalcNone:
		return c.Completed
	default:
		return false
	}
}

func foodStreak(history []FoodLogEntry, days []string) bool {
	for _, d := range days {
		logged := false
		for _, f := range history {
			if f.Date != d {
				continue
			}
			if f.Rating < FoodGoodRating {
				return false
			}
			logged = true
		}
		if !logged {
			return false
		}
	}
	return true
}

func waterStreak(s GameState, days []string) bool {
	glasses := make(map[string]int, len(s.WaterHistory)+1)
	for _, w := range s.WaterHistory {
		glasses[w.Date] = w.Glasses
	}
	// today's intake is not archived until rollover
	glasses[s.LastResetDate] = s.Player.WaterIntakeToday
	for _, d := range days {
		if glasses[d] < WaterGoalGlasses {
			return false
		}
	}
	return true
}

func hardcoreStreak(s GameState, days []string) bool {
	hard := make(map[string]bool, len(s.History)+1)
	for _, r := range s.History {
		hard[r.Date] = r.Hardcore
	}
	hard[s.LastResetDate] = s.Player.HardcoreMode
	for _, d := range days {
		if !hard[d] {
			return false
		}
	}
	return true
}

func jokerClean(history []FoodLogEntry, days []string) bool {
	in := make(map[string]bool, len(days))
	for _, d := range days {
		in[d] = true
	}
	for _, f := range history {
		if in[f.Date] && f.Alcohol && !f.JokerApplied {
			return false
		}
	}
	return true
}
