package engine

const (
	RandomQuestXP       = 150
	SleepQuestID        = "q-sleep"
	PersonalQuestXP     = 20
	PersonalQuestCoins  = 2
	HardcoreXPNumerator = 3 // hardcore XP is x * 3 / 2, floored
	DailyBonusCoins     = 30
	DailyBonusMinXP     = 10
	DailyBonusSpreadXP  = 190
)

// TierCount is the number of thresholds per stat.
const TierCount = 6

// Catalog holds the fixed content the engine builds quests and bosses from.
// It can be overridden from a rules file.
type Catalog struct {
	DailyQuests    []Quest
	HardcoreQuests []Quest
	RandomQuests   []string
	Bosses         []Boss
	Challenges     []Challenge
	Tiers          map[StatKind][]float64
}

func DefaultCatalog() Catalog {
	return Catalog{
		DailyQuests: []Quest{
			{ID: "q-mobility", Label: "Morning mobility (10 min)", XP: 50, Coins: 5, Kind: QuestDaily},
			{ID: "q-workout", Label: "Workout session", XP: 100, Coins: 10, Kind: QuestDaily},
			{ID: "q-read", Label: "Read 20 pages", XP: 40, Coins: 4, Kind: QuestDaily},
			{ID: "q-water", Label: "Drink 2.5 L of water", XP: 30, Coins: 3, Kind: QuestDaily},
			{ID: "q-meditate", Label: "Meditate (10 min)", XP: 30, Coins: 3, Kind: QuestDaily},
		},
		HardcoreQuests: []Quest{
			{ID: "h-stretch", Label: "Full-body stretch (20 min)", XP: 60, Coins: 5, Kind: QuestHardcore},
			{ID: "h-cardio", Label: "Zone 2 cardio (30 min)", XP: 80, Coins: 8, Kind: QuestHardcore},
			{ID: "h-nosugar", Label: "No added sugar today", XP: 70, Coins: 7, Kind: QuestHardcore},
		},
		RandomQuests: []string{
			"Take a 30 minute walk outside",
			"Cook a healthy meal from scratch",
			"Call a friend or family member",
			"Declutter one drawer or shelf",
			"Learn something new for 30 minutes",
			"Do 100 burpees over the day",
			"No screens after 21:00",
			"Write one page in a journal",
		},
		Bosses: []Boss{
			{ID: "b-mini", Name: "Couch Goblin", Tier: BossMini, MinStreak: 3, Scaling: 1.0, XP: 200, Coins: 20},
			{ID: "b-elite", Name: "Sugar Wraith", Tier: BossElite, MinStreak: 7, Scaling: 1.2, XP: 400, Coins: 40},
			{ID: "b-season", Name: "Season Warden", Tier: BossSeasonal, MinStreak: 10, Scaling: 1.5, XP: 600, Coins: 60},
			{ID: "b-legend", Name: "Procrastination Hydra", Tier: BossLegendary, MinStreak: 14, Scaling: 1.8, XP: 800, Coins: 80},
			{ID: "b-mythic", Name: "Burnout Titan", Tier: BossMythic, MinStreak: 30, Scaling: 2.5, XP: 1500, Coins: 150},
			{ID: "b-final", Name: "The Inner Critic", Tier: BossFinal, MinStreak: 60, Scaling: 4.0, XP: 3000, Coins: 300},
		},
		Challenges: []Challenge{
			{ID: "c1", Label: "Food streak: 7 days 8-10 rated", XP: 125, Calc: CalcFoodStreak},
			{ID: "c2", Label: "Hardcore health: stretch + mobility daily", Coins: 50, Calc: CalcHardcoreStreak},
			{ID: "c3", Label: "No Joker Day completion", XP: 50, Calc: CalcJoker},
			{ID: "c4", Label: "Hydration streak: 7 days of 10+ glasses", XP: 75, Calc: CalcWaterStreak},
			{ID: "c5", Label: "Sleep discipline: Bed before 23:30 (5 nights)", XP: 100},
			{ID: "c6", Label: "Steps challenge: 10k steps (5 days)", XP: 90},
			{ID: "c7", Label: "No junk week (7 days)", XP: 125},
			{ID: "c8", Label: "Zero liquid calories (5 days)", XP: 60},
			{ID: "c9", Label: "Dopamine detox lite (No social < 12:00, 5 days)", XP: 100},
			{ID: "c10", Label: "Focus blocks: 3x45m deep work (4 days)", XP: 90},
			{ID: "c11", Label: "Discipline: Wake up at first alarm (7 days)", XP: 125},
		},
		Tiers: map[StatKind][]float64{
			StatPullups:  {5, 10, 15, 20, 25, 30},
			StatPushups:  {20, 35, 50, 65, 80, 100},
			StatSquats:   {30, 50, 75, 100, 125, 150},
			StatStamina:  {5, 10, 15, 20, 30, 45},
			StatReaction: {0.40, 0.35, 0.30, 0.25, 0.22, 0.20},
			StatVitality: {5, 6, 6.5, 7, 7.5, 8},
		},
	}
}

// sleepQuest is the tracker quest completed by logging sleep.
func sleepQuest() Quest {
	return Quest{ID: SleepQuestID, Label: "Log Sleep Hours", Kind: QuestTracker}
}

// baseQuests returns fresh DAILY and TRACKER quests.
func (c Catalog) baseQuests() []Quest {
	out := make([]Quest, 0, len(c.DailyQuests)+1)
	for _, q := range c.DailyQuests {
		q.Completed = false
		q.Kind = QuestDaily
		out = append(out, q)
	}
	return append(out, sleepQuest())
}

func hardcoreXP(xp int) int {
	return xp * HardcoreXPNumerator / 2
}
