package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	e, _ := newTestEngine()
	s := e.NewGameState()

	assert.Equal(t, 1, s.Player.Level)
	assert.Equal(t, 0, s.Player.XP)
	assert.Equal(t, 3, s.Player.InventorySlots)
	assert.Equal(t, 1.0, s.Player.NextDayXPMultiplier)
	assert.Equal(t, InitialReactionSeconds, s.Player.PR.ReactionSeconds)
	assert.Equal(t, DateKey(testStart), s.LastResetDate)
	assert.Len(t, questIDsOfKind(s, QuestDaily), len(DefaultCatalog().DailyQuests))
	assert.Equal(t, []string{SleepQuestID}, questIDsOfKind(s, QuestTracker))
	assert.Len(t, questIDsOfKind(s, QuestRandom), 1)
	assert.Len(t, s.Challenges, 11)
	assert.Len(t, s.Bosses, 6)

	info := SeasonFor(testStart)
	assert.Equal(t, info.Season, s.CurrentSeason)
	assert.Equal(t, info.Day, s.SeasonDay)
}

func TestRollover_SameDayIsNoop(t *testing.T) {
	e, _ := newTestEngine()
	s := e.NewGameState()
	out := e.Rollover(s)
	assert.False(t, out.Applied)
	assert.Equal(t, s, out.State)
}

func TestRollover_IdempotentPerDate(t *testing.T) {
	e, clock := newTestEngine()
	s := completeAllDailies(e, e.NewGameState())
	clock.AdvanceDays(1)

	first := e.Rollover(s)
	require.True(t, first.Applied)
	second := e.Rollover(first.State)
	assert.False(t, second.Applied)
	assert.Equal(t, 1, second.State.Player.Streak)
}

func TestRollover_StreakIncrementsWhenAllDailiesDone(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s.Player.Streak = 4
	s = completeAllDailies(e, s)
	clock.AdvanceDays(1)

	out := e.Rollover(s)
	assert.Equal(t, 5, out.State.Player.Streak)
	for _, q := range out.State.Quests {
		assert.False(t, q.Completed, "quests are regenerated uncompleted")
	}
}

func TestRollover_StreakResetsWhenADailyIsMissed(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s.Player.Streak = 4
	daily := questIDsOfKind(s, QuestDaily)
	for _, id := range daily[1:] {
		s = e.Apply(s, CompleteQuest{ID: id}).State
	}
	clock.AdvanceDays(1)

	out := e.Rollover(s)
	assert.Equal(t, 0, out.State.Player.Streak)
}

func TestRollover_SicknessSaverKeepsStreak(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s.Player.Streak = 4
	s = e.Apply(s, ToggleSickness{}).State
	clock.AdvanceDays(1)

	out := e.Rollover(s)
	assert.Equal(t, 5, out.State.Player.Streak)
	assert.False(t, out.State.Player.SicknessActive, "sickness is cleared")
}

func TestRollover_ResetsDayScopedState(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s = e.Apply(s, ToggleHardcore{}).State
	s = e.Apply(s, TrackWater{Glasses: 7}).State
	s = e.Apply(s, AddPersonalQuest{Label: "Call mom"}).State
	prevDate := s.LastResetDate
	clock.AdvanceDays(1)

	out := e.Rollover(s).State
	assert.False(t, out.Player.HardcoreMode)
	assert.Empty(t, questIDsOfKind(out, QuestHardcore))
	assert.Empty(t, questIDsOfKind(out, QuestPersonal))
	assert.Len(t, questIDsOfKind(out, QuestRandom), 1)
	assert.Equal(t, 0, out.Player.WaterIntakeToday)
	assert.Equal(t, 0, out.Player.EarnedXPToday)
	require.NotEmpty(t, out.WaterHistory)
	assert.Equal(t, WaterEntry{Date: prevDate, Glasses: 7}, out.WaterHistory[len(out.WaterHistory)-1])

	require.Len(t, out.History, 1)
	assert.Equal(t, prevDate, out.History[0].Date)
	assert.True(t, out.History[0].Hardcore)
	assert.Equal(t, 7, out.History[0].Water)
	assert.Equal(t, DateKey(clock.Now()), out.LastResetDate)
}

func TestRollover_WaterHistoryCapped(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	for i := 0; i < WaterHistoryCap+5; i++ {
		clock.AdvanceDays(1)
		s = e.Rollover(s).State
	}
	assert.Len(t, s.WaterHistory, WaterHistoryCap)
}

func TestRollover_ColdShowerMultiplier(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s = e.Apply(s, TakeColdShower{}).State
	clock.AdvanceDays(1)

	s = e.Rollover(s).State
	assert.Equal(t, ColdShowerXPFactor, s.Player.NextDayXPMultiplier)

	clock.AdvanceDays(1)
	s = e.Rollover(s).State
	assert.Equal(t, 1.0, s.Player.NextDayXPMultiplier, "bonus lasts one day")
}

func TestRollover_SeasonSweep(t *testing.T) {
	e, clock := newTestEngine()
	clock.Set(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
	s := e.NewGameState()
	require.Equal(t, SeasonLength, s.SeasonDay)
	s.Player.CoinsActive = 120
	s.Player.CoinsBank = 30

	clock.AdvanceDays(1)
	out := e.Rollover(s)
	assert.Equal(t, 0, out.State.Player.CoinsActive)
	assert.Equal(t, 150, out.State.Player.CoinsBank)
	assert.Equal(t, 2, out.State.CurrentSeason)
	assert.Equal(t, 1, out.State.SeasonDay)

	found := false
	for _, n := range out.Notices {
		if n.Kind == NoticeSeason {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRollover_NoSweepMidSeason(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s.Player.CoinsActive = 120
	clock.AdvanceDays(1)
	out := e.Rollover(s)
	assert.Equal(t, 120, out.State.Player.CoinsActive)
}

func TestRollover_ChallengesResetOnNewWeek(t *testing.T) {
	e, clock := newTestEngine()
	s := e.NewGameState()
	s = e.Apply(s, CompleteChallenge{ID: "c5"}).State

	// 2026-03-10 is a Tuesday; Wednesday is the same ISO week.
	clock.AdvanceDays(1)
	s = e.Rollover(s).State
	assert.True(t, s.Challenges[4].Completed)

	clock.AdvanceDays(6)
	s = e.Rollover(s).State
	assert.False(t, s.Challenges[4].Completed)
}

func TestRollover_RandomQuestFromCatalog(t *testing.T) {
	e, clock := newTestEngine(0, 3)
	s := e.NewGameState()
	clock.AdvanceDays(1)
	s = e.Rollover(s).State

	ids := questIDsOfKind(s, QuestRandom)
	require.Len(t, ids, 1)
	q, _ := s.Quest(ids[0])
	assert.Equal(t, DefaultCatalog().RandomQuests[3], q.Label)
	assert.Equal(t, RandomQuestXP, q.XP)
}
