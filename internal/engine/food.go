package engine

const (
	FoodGoodRating   = 8
	FoodPoorRating   = 4
	FoodGoodXP       = 50
	FoodPoorXP       = -50
	AlcoholPenaltyXP = -100
)

// FoodRatingXP maps a meal rating to its XP delta.
func FoodRatingXP(rating int) int {
	switch {
	case rating >= FoodGoodRating:
		return FoodGoodXP
	case rating <= FoodPoorRating:
		return FoodPoorXP
	default:
		return 0
	}
}

// JokerAvailable reports whether no prior entry in the month of date used the Joker.
func JokerAvailable(history []FoodLogEntry, date string) bool {
	for _, f := range history {
		if f.JokerApplied && sameMonth(f.Date, date) {
			return false
		}
	}
	return true
}

// scoreFood decides the Joker flag and XP delta for a new entry.
func scoreFood(history []FoodLogEntry, entry FoodLogEntry) (FoodLogEntry, int, []Notice) {
	xp := FoodRatingXP(entry.Rating)
	var notices []Notice
	entry.JokerApplied = false
	if entry.Alcohol {
		if JokerAvailable(history, entry.Date) {
			entry.JokerApplied = true
			notices = append(notices, notice(NoticeInfo, "JOKER ACTIVATED! No alcohol penalty today."))
		} else {
			xp += AlcoholPenaltyXP
			notices = append(notices, notice(NoticePenalty, "ALCOHOL PENALTY: %d XP.", AlcoholPenaltyXP))
		}
	}
	return entry, xp, notices
}
