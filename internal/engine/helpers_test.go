package engine

import (
	"fmt"
	"time"
)

// fixedRand replays scripted values (clamped below n), then returns 0.
type fixedRand struct {
	vals []int
	i    int
}

func (r *fixedRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i]
	r.i++
	if v >= n {
		v = n - 1
	}
	return v
}

var testStart = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newTestEngine(rnd ...int) (*Engine, *FakeClock) {
	clock := NewFakeClock(testStart)
	e := New(clock, &fixedRand{vals: rnd}, DefaultCatalog())
	n := 0
	e.NewID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return e, clock
}

func completeAllDailies(e *Engine, s GameState) GameState {
	for _, q := range s.Quests {
		if q.Kind == QuestDaily {
			s = e.Apply(s, CompleteQuest{ID: q.ID}).State
		}
	}
	return s
}

func questIDsOfKind(s GameState, kind QuestKind) []string {
	var out []string
	for _, q := range s.Quests {
		if q.Kind == kind {
			out = append(out, q.ID)
		}
	}
	return out
}
