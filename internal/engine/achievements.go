package engine

// Achievement represents a badge/achievement the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the player has earned.
type AchievementChecker struct {
	state GameState
}

func NewAchievementChecker(s GameState) *AchievementChecker {
	return &AchievementChecker{state: s}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("first_steps", "First Steps", "Reach level 2", "🌱", 2),
		c.levelAchievement("on_the_path", "On the Path", "Reach level 5", "🌳", 5),
		c.levelAchievement("seasoned", "Seasoned", "Reach level 10", "⭐", 10),
		c.levelAchievement("veteran", "Veteran", "Reach level 20", "🌟", 20),

		// Streaks
		c.streakAchievement("warming_up", "Warming Up", "3-day streak", "🔥", 3),
		c.streakAchievement("locked_in", "Locked In", "7-day streak", "🔒", 7),
		c.streakAchievement("unbroken", "Unbroken", "30-day streak", "💎", 30),

		// Stat tiers
		c.tierAchievement("iron_grip", "Iron Grip", "Pullups tier 3", "💪", StatPullups, 3),
		c.tierAchievement("quick_draw", "Quick Draw", "Reaction tier 3", "⚡", StatReaction, 3),
		c.tierAchievement("well_rested", "Well Rested", "Sleep tier 4", "😴", StatVitality, 4),
		c.maxTierAchievement("peak_form", "Peak Form", "Any stat at tier 6", "🏆"),

		// Logs
		c.countAchievement("food_logger", "Food Logger", "Log 10 meals", "🥗", len(c.state.FoodHistory), 10),
		c.countAchievement("record_breaker", "Record Breaker", "Set 5 personal records", "📈", len(c.state.PRHistory), 5),
		c.countAchievement("saver", "Saver", "Make a Vault deposit", "🏦", c.deposits(), 1),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.state.Player.Level >= level}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.state.Player.Streak >= days}
}

func (c *AchievementChecker) tierAchievement(id, name, desc, icon string, k StatKind, tier int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.state.Player.Stats[k] >= tier}
}

func (c *AchievementChecker) maxTierAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, t := range c.state.Player.Stats {
		if t >= TierCount {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) countAchievement(id, name, desc, icon string, have, want int) Achievement {
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: have >= want}
}

func (c *AchievementChecker) deposits() int {
	n := 0
	for _, tx := range c.state.BankHistory {
		if tx.Kind == TxDeposit {
			n++
		}
	}
	return n
}
