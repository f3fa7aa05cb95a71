package engine

import "time"

const (
	SeasonLength   = 91
	SeasonsPerYear = 4
	SeasonWeeks    = 13
)

type SeasonInfo struct {
	Season    int
	Day       int
	Week      int
	FinalWeek bool
}

// SeasonFor maps a calendar date to its season, day and week.
// Days past 364 fold into season 4.
func SeasonFor(t time.Time) SeasonInfo {
	doy := t.YearDay() - 1
	season := doy/SeasonLength + 1
	if season > SeasonsPerYear {
		season = SeasonsPerYear
	}
	day := doy%SeasonLength + 1
	week := (day-1)/7 + 1
	return SeasonInfo{Season: season, Day: day, Week: week, FinalWeek: week == SeasonWeeks}
}
