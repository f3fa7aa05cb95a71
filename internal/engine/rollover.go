package engine

import "time"

const (
	WaterHistoryCap    = 91
	SleepHistoryCap    = 90
	DayHistoryCap      = 365
	ColdShowerXPFactor = 1.03
)

// Rollover moves the state onto today's date. It is a no-op when the state
// was already reset today, so it is safe to run before every command.
func (e *Engine) Rollover(s GameState) Outcome {
	now := e.now()
	today := DateKey(now)
	if s.LastResetDate == today {
		return noop(s)
	}

	prev := s
	s = s.Clone()
	var notices []Notice
	p := &s.Player

	if p.SicknessActive || allDailiesDone(prev.Quests) {
		p.Streak++
	} else {
		if p.Streak > 0 {
			notices = append(notices, notice(NoticePenalty, "Streak lost after %d days.", p.Streak))
		}
		p.Streak = 0
	}

	if prev.LastResetDate != "" {
		s.History = keepLast(append(s.History, dayRecord(prev)), DayHistoryCap)
		s.WaterHistory = keepLast(append(s.WaterHistory, WaterEntry{
			Date:    prev.LastResetDate,
			Glasses: p.WaterIntakeToday,
		}), WaterHistoryCap)
	}
	p.WaterIntakeToday = 0

	s.Quests = append(e.Catalog.baseQuests(), e.randomQuest())
	s.Bosses = cloneSlice(e.Catalog.Bosses)
	if newWeek(prev.LastResetDate, now) {
		s.Challenges = e.freshChallenges()
	}

	p.NextDayXPMultiplier = 1.0
	if p.LastColdShowerDate != "" && p.LastColdShowerDate == Yesterday(today) {
		p.NextDayXPMultiplier = ColdShowerXPFactor
		notices = append(notices, notice(NoticeInfo, "Cold shower bonus: +3%% XP today."))
	}

	p.SicknessActive = false
	p.HardcoreMode = false
	p.EarnedXPToday = 0
	p.EarnedCoinsToday = 0

	season := SeasonFor(now)
	if prev.SeasonDay == SeasonLength && season.Day == 1 {
		p.CoinsBank += p.CoinsActive
		p.CoinsActive = 0
		notices = append(notices, notice(NoticeSeason, "Season Complete! Active coins synced to Vault."))
	}
	s.CurrentSeason = season.Season
	s.SeasonDay = season.Day
	s.LastResetDate = today

	return Outcome{State: s, Notices: notices, Applied: true}
}

func dayRecord(s GameState) DayRecord {
	r := DayRecord{
		Date:        s.LastResetDate,
		XPEarned:    s.Player.EarnedXPToday,
		CoinsEarned: s.Player.EarnedCoinsToday,
		Water:       s.Player.WaterIntakeToday,
		Hardcore:    s.Player.HardcoreMode,
	}
	for _, q := range s.Quests {
		if q.Completed {
			r.QuestsDone++
		}
	}
	for _, e := range s.SleepHistory {
		if e.Date == s.LastResetDate {
			r.SleepHours = e.Hours
		}
	}
	return r
}

// newWeek reports whether now falls in a later ISO week than the last reset.
func newWeek(last string, now time.Time) bool {
	t, err := ParseDateKey(last, now.Location())
	if err != nil {
		return true
	}
	ly, lw := t.ISOWeek()
	ny, nw := now.ISOWeek()
	return ly != ny || lw != nw
}
