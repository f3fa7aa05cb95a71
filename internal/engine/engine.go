package engine

import (
	"time"

	"github.com/google/uuid"
)

// InitialReactionSeconds is the reaction record a new player starts with.
const InitialReactionSeconds = 0.5

// Engine applies commands and the daily rollover to a GameState.
// Handlers never mutate their input.
type Engine struct {
	Clock   Clock
	Rand    Rand
	NewID   func() string
	Catalog Catalog
}

func New(clock Clock, rnd Rand, catalog Catalog) *Engine {
	if clock == nil {
		clock = RealClock{}
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	return &Engine{Clock: clock, Rand: rnd, NewID: uuid.NewString, Catalog: catalog}
}

// Outcome is the result of one transition. Applied is false for a no-op,
// in which case State is the input unchanged.
type Outcome struct {
	State   GameState
	Notices []Notice
	Applied bool
}

func noop(s GameState) Outcome {
	return Outcome{State: s}
}

func (e *Engine) now() time.Time {
	return e.Clock.Now()
}

func (e *Engine) today() string {
	return DateKey(e.now())
}

// NewGameState builds the first-run aggregate for a new account.
func (e *Engine) NewGameState() GameState {
	now := e.now()
	season := SeasonFor(now)
	p := Player{
		Level:               1,
		NextDayXPMultiplier: 1.0,
		InventorySlots:      InventorySlotsForLevel(1),
		PR:                  PersonalRecords{ReactionSeconds: InitialReactionSeconds},
	}
	e.Catalog.recomputeTiers(&p)

	return GameState{
		Player:        p,
		Quests:        append(e.Catalog.baseQuests(), e.randomQuest()),
		FoodHistory:   []FoodLogEntry{},
		SleepHistory:  []SleepEntry{},
		BankHistory:   []BankTransaction{},
		PRHistory:     []PRHistoryEntry{},
		Challenges:    e.freshChallenges(),
		WaterHistory:  []WaterEntry{},
		Bosses:        cloneSlice(e.Catalog.Bosses),
		History:       []DayRecord{},
		CurrentSeason: season.Season,
		SeasonDay:     season.Day,
		LastResetDate: DateKey(now),
	}
}

func (e *Engine) randomQuest() Quest {
	label := "Surprise quest"
	if n := len(e.Catalog.RandomQuests); n > 0 {
		label = e.Catalog.RandomQuests[e.Rand.IntN(n)]
	}
	return Quest{ID: "random-" + e.NewID(), Label: label, XP: RandomQuestXP, Kind: QuestRandom}
}

func (e *Engine) freshChallenges() []Challenge {
	out := cloneSlice(e.Catalog.Challenges)
	for i := range out {
		out[i].Completed = false
	}
	return out
}

// ChallengeView pairs a challenge with its current evaluation.
type ChallengeView struct {
	Challenge
	Done bool
}

func (e *Engine) Challenges(s GameState) []ChallengeView {
	today := e.now()
	out := make([]ChallengeView, 0, len(s.Challenges))
	for _, c := range s.Challenges {
		out = append(out, ChallengeView{Challenge: c, Done: EvaluateChallenge(s, c, today)})
	}
	return out
}

// Season returns the season info for the current date.
func (e *Engine) Season() SeasonInfo {
	return SeasonFor(e.now())
}
