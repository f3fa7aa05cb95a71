package engine

const MaxSleepHours = 24

func (e *Engine) logSleep(s GameState, c LogSleep) Outcome {
	if c.Hours < 0 || c.Hours > MaxSleepHours {
		return noop(s)
	}
	today := e.today()
	s = s.Clone()

	replaced := false
	for i := range s.SleepHistory {
		if s.SleepHistory[i].Date == today {
			s.SleepHistory[i].Hours = c.Hours
			replaced = true
		}
	}
	if !replaced {
		s.SleepHistory = append(s.SleepHistory, SleepEntry{Date: today, Hours: c.Hours})
	}
	s.SleepHistory = keepLast(s.SleepHistory, SleepHistoryCap)

	s.Player.PR.AvgSleepHours = AverageSleep(s.SleepHistory)
	notices := []Notice{notice(NoticeInfo, "Logged %.1f h of sleep (avg %.1f h).", c.Hours, s.Player.PR.AvgSleepHours)}
	notices = append(notices, e.Catalog.recomputeTiers(&s.Player)...)

	if i := s.findQuest(SleepQuestID); i >= 0 {
		s.Quests[i].Completed = true
	}
	return Outcome{State: s, Notices: notices, Applied: true}
}

// AverageSleep is the mean over the retained window, 0 when empty.
func AverageSleep(history []SleepEntry) float64 {
	if len(history) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range history {
		sum += e.Hours
	}
	return sum / float64(len(history))
}
