package engine

// PersonalRecords are the raw inputs that drive stat tiers.
type PersonalRecords struct {
	Pullups          float64 `json:"pullups"`
	Pushups          float64 `json:"pushups"`
	Squats           float64 `json:"squats"`
	EnduranceMinutes float64 `json:"endurance_minutes"`
	ReactionSeconds  float64 `json:"reaction_seconds"`
	AvgSleepHours    float64 `json:"avg_sleep_hours"`
}

func (pr PersonalRecords) Get(k StatKind) float64 {
	switch k {
	case StatPullups:
		return pr.Pullups
	case StatPushups:
		return pr.Pushups
	case StatSquats:
		return pr.Squats
	case StatStamina:
		return pr.EnduranceMinutes
	case StatReaction:
		return pr.ReactionSeconds
	case StatVitality:
		return pr.AvgSleepHours
	default:
		return 0
	}
}

func (pr *PersonalRecords) Set(k StatKind, v float64) {
	switch k {
	case StatPullups:
		pr.Pullups = v
	case StatPushups:
		pr.Pushups = v
	case StatSquats:
		pr.Squats = v
	case StatStamina:
		pr.EnduranceMinutes = v
	case StatReaction:
		pr.ReactionSeconds = v
	case StatVitality:
		pr.AvgSleepHours = v
	}
}

type Player struct {
	Level   int `json:"level"`
	XP      int `json:"xp"`
	TotalXP int `json:"total_xp"`

	CoinsActive int `json:"coins_active"`
	CoinsBank   int `json:"coins_bank"`

	Stats map[StatKind]int `json:"stats"`
	PR    PersonalRecords  `json:"pr"`

	Streak         int  `json:"streak"`
	HardcoreMode   bool `json:"hardcore_mode"`
	SicknessActive bool `json:"sickness_active"`

	WaterIntakeToday    int     `json:"water_intake_today"`
	LastColdShowerDate  string  `json:"last_cold_shower_date,omitempty"`
	NextDayXPMultiplier float64 `json:"next_day_xp_multiplier"`
	InventorySlots      int     `json:"inventory_slots"`

	EarnedXPToday    int `json:"earned_xp_today"`
	EarnedCoinsToday int `json:"earned_coins_today"`
}

type Quest struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	XP        int       `json:"xp"`
	Coins     int       `json:"coins"`
	Completed bool      `json:"completed"`
	Kind      QuestKind `json:"kind"`
}

type Boss struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Tier      BossTier `json:"tier"`
	MinStreak int      `json:"min_streak"`
	Scaling   float64  `json:"scaling"`
	XP        int      `json:"xp"`
	Coins     int      `json:"coins"`
}

type FoodLogEntry struct {
	Date         string   `json:"date"`
	Meal         MealKind `json:"meal"`
	Rating       int      `json:"rating"`
	Alcohol      bool     `json:"alcohol"`
	JokerApplied bool     `json:"joker_applied"`
	Description  string   `json:"description"`
	Time         string   `json:"time"`
}

type BankTransaction struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Amount int    `json:"amount"`
	Note   string `json:"note"`
	Kind   TxKind `json:"kind"`
}

type PRHistoryEntry struct {
	Date  string   `json:"date"`
	Stat  StatKind `json:"stat"`
	Value float64  `json:"value"`
}

type SleepEntry struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type WaterEntry struct {
	Date    string `json:"date"`
	Glasses int    `json:"glasses"`
}

type Challenge struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	XP        int           `json:"xp"`
	Coins     int           `json:"coins"`
	Completed bool          `json:"completed"`
	Calc      ChallengeCalc `json:"calc,omitempty"`
}

// DayRecord summarizes one finished calendar day.
type DayRecord struct {
	Date        string  `json:"date"`
	XPEarned    int     `json:"xp_earned"`
	CoinsEarned int     `json:"coins_earned"`
	QuestsDone  int     `json:"quests_done"`
	SleepHours  float64 `json:"sleep_hours"`
	Water       int     `json:"water"`
	Hardcore    bool    `json:"hardcore"`
}

// GameState is the whole persisted aggregate for one account.
type GameState struct {
	Player        Player            `json:"player"`
	Quests        []Quest           `json:"quests"`
	FoodHistory   []FoodLogEntry    `json:"food_history"`
	SleepHistory  []SleepEntry      `json:"sleep_history"`
	BankHistory   []BankTransaction `json:"bank_history"`
	PRHistory     []PRHistoryEntry  `json:"pr_history"`
	Challenges    []Challenge       `json:"challenges"`
	WaterHistory  []WaterEntry      `json:"water_history"`
	Bosses        []Boss            `json:"bosses"`
	History       []DayRecord       `json:"history"`
	CurrentSeason int               `json:"current_season"`
	SeasonDay     int               `json:"season_day"`
	LastResetDate string            `json:"last_reset_date"`
}

// Clone returns a deep copy so handlers can mutate without touching the input.
func (s GameState) Clone() GameState {
	out := s
	out.Player.Stats = make(map[StatKind]int, len(s.Player.Stats))
	for k, v := range s.Player.Stats {
		out.Player.Stats[k] = v
	}
	out.Quests = cloneSlice(s.Quests)
	out.FoodHistory = cloneSlice(s.FoodHistory)
	out.SleepHistory = cloneSlice(s.SleepHistory)
	out.BankHistory = cloneSlice(s.BankHistory)
	out.PRHistory = cloneSlice(s.PRHistory)
	out.Challenges = cloneSlice(s.Challenges)
	out.WaterHistory = cloneSlice(s.WaterHistory)
	out.Bosses = cloneSlice(s.Bosses)
	out.History = cloneSlice(s.History)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (s GameState) findQuest(id string) int {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return i
		}
	}
	return -1
}

// Quest returns the quest with the given id.
func (s GameState) Quest(id string) (Quest, bool) {
	if i := s.findQuest(id); i >= 0 {
		return s.Quests[i], true
	}
	return Quest{}, false
}

// Boss returns the boss with the given id.
func (s GameState) Boss(id string) (Boss, bool) {
	for _, b := range s.Bosses {
		if b.ID == id {
			return b, true
		}
	}
	return Boss{}, false
}

func allDailiesDone(quests []Quest) bool {
	for _, q := range quests {
		if q.Kind == QuestDaily && !q.Completed {
			return false
		}
	}
	return true
}

// keepLast trims a slice to its n most recent (trailing) entries.
func keepLast[T any](in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return in[len(in)-n:]
}
