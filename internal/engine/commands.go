package engine

import (
	"strings"
	"time"
)

// Command is one user action. The set is closed; Apply switches over it.
type Command interface {
	isCommand()
}

// CompleteQuest marks a quest done and grants its reward.
type CompleteQuest struct{ ID string }

// FightBoss grants a boss reward when the streak allows it.
type FightBoss struct{ ID string }

type Deposit struct{ Amount int }

type Withdraw struct {
	Amount int
	Note   string
}

type ToggleHardcore struct{}

type ToggleSickness struct{}

type LogSleep struct{ Hours float64 }

type LogFood struct {
	Rating      int
	Alcohol     bool
	Meal        MealKind
	Description string
	Time        string
}

type UpdatePR struct{ Fields PRFields }

type CompleteChallenge struct{ ID string }

// TrackWater adds glasses to today's count. Negative values undo.
type TrackWater struct{ Glasses int }

type TakeColdShower struct{}

type AddPersonalQuest struct{ Label string }

func (CompleteQuest) isCommand()     {}
func (FightBoss) isCommand()         {}
func (Deposit) isCommand()           {}
func (Withdraw) isCommand()          {}
func (ToggleHardcore) isCommand()    {}
func (ToggleSickness) isCommand()    {}
func (LogSleep) isCommand()          {}
func (LogFood) isCommand()           {}
func (UpdatePR) isCommand()          {}
func (CompleteChallenge) isCommand() {}
func (TrackWater) isCommand()        {}
func (TakeColdShower) isCommand()    {}
func (AddPersonalQuest) isCommand()  {}

// Apply runs one command against s. Rule violations return s unchanged
// with Applied false.
func (e *Engine) Apply(s GameState, cmd Command) Outcome {
	switch c := cmd.(type) {
	case CompleteQuest:
		return e.completeQuest(s, c)
	case FightBoss:
		return e.fightBoss(s, c)
	case Deposit:
		return e.deposit(s, c)
	case Withdraw:
		return e.withdraw(s, c)
	case ToggleHardcore:
		return e.toggleHardcore(s)
	case ToggleSickness:
		return e.toggleSickness(s)
	case LogSleep:
		return e.logSleep(s, c)
	case LogFood:
		return e.logFood(s, c)
	case UpdatePR:
		return e.updatePR(s, c)
	case CompleteChallenge:
		return e.completeChallenge(s, c)
	case TrackWater:
		return e.trackWater(s, c)
	case TakeColdShower:
		return e.takeColdShower(s)
	case AddPersonalQuest:
		return e.addPersonalQuest(s, c)
	default:
		return noop(s)
	}
}

func (e *Engine) completeQuest(s GameState, c CompleteQuest) Outcome {
	i := s.findQuest(c.ID)
	if i < 0 || !CanPlayQuests(s.Player) {
		return noop(s)
	}
	q := s.Quests[i]
	if q.Completed || q.Kind == QuestTracker {
		return noop(s)
	}

	wasAllDone := allDailiesDone(s.Quests)
	s = s.Clone()
	s.Quests[i].Completed = true

	xp, coins := q.XP, q.Coins
	if s.Player.HardcoreMode {
		xp = hardcoreXP(xp)
	}
	notices := []Notice{notice(NoticeReward, "Quest complete: %s (+%d XP, +%d coins)", q.Label, xp, coins)}
	if !wasAllDone && allDailiesDone(s.Quests) {
		bonus := DailyBonusMinXP + e.Rand.IntN(DailyBonusSpreadXP)
		xp += bonus
		coins += DailyBonusCoins
		notices = append(notices, notice(NoticeReward, "All dailies done! Bonus +%d XP, +%d coins.", bonus, DailyBonusCoins))
	}
	notices = append(notices, grant(&s, xp, coins)...)
	return Outcome{State: s, Notices: notices, Applied: true}
}

func (e *Engine) fightBoss(s GameState, c FightBoss) Outcome {
	b, err := CheckBoss(s, c.ID)
	if err != nil {
		return noop(s)
	}
	s = s.Clone()
	notices := []Notice{notice(NoticeReward, "%s defeated! +%d XP, +%d coins.", b.Name, b.XP, b.Coins)}
	notices = append(notices, grant(&s, b.XP, b.Coins)...)
	return Outcome{State: s, Notices: notices, Applied: true}
}

func (e *Engine) toggleHardcore(s GameState) Outcome {
	if !CanToggleHardcore(s.Player) {
		return noop(s)
	}
	s = s.Clone()
	enabling := !s.Player.HardcoreMode
	s.Player.HardcoreMode = enabling
	if !enabling {
		s.Quests = withoutKind(s.Quests, QuestHardcore)
		return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Hardcore mode off.")}, Applied: true}
	}
	for _, h := range e.Catalog.HardcoreQuests {
		if s.findQuest(h.ID) >= 0 {
			continue
		}
		h.Completed = false
		h.Kind = QuestHardcore
		h.XP = hardcoreXP(h.XP)
		s.Quests = append(s.Quests, h)
	}
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Hardcore mode on: quest XP x1.5.")}, Applied: true}
}

func (e *Engine) toggleSickness(s GameState) Outcome {
	s = s.Clone()
	p := &s.Player
	p.SicknessActive = !p.SicknessActive
	if !p.SicknessActive {
		return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Sickness saver off.")}, Applied: true}
	}
	p.HardcoreMode = false
	s.Quests = withoutKind(s.Quests, QuestHardcore)
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Sickness saver on: streak is safe today.")}, Applied: true}
}

func (e *Engine) logFood(s GameState, c LogFood) Outcome {
	if c.Rating < 1 || c.Rating > 10 {
		return noop(s)
	}
	meal := c.Meal
	if meal == "" {
		meal = MealSnack
	}
	if !meal.IsValid() {
		return noop(s)
	}
	now := e.now()
	entry := FoodLogEntry{
		Date:        DateKey(now),
		Meal:        meal,
		Rating:      c.Rating,
		Alcohol:     c.Alcohol,
		Description: strings.TrimSpace(c.Description),
		Time:        c.Time,
	}
	if entry.Time == "" {
		entry.Time = now.Format("15:04")
	}

	entry, xp, notices := scoreFood(s.FoodHistory, entry)
	s = s.Clone()
	s.FoodHistory = append(s.FoodHistory, entry)
	notices = append(notices, grant(&s, xp, 0)...)
	return Outcome{State: s, Notices: notices, Applied: true}
}

func (e *Engine) updatePR(s GameState, c UpdatePR) Outcome {
	fields := make(PRFields, len(c.Fields))
	for k, v := range c.Fields {
		if k.IsValid() && k != StatVitality && v >= 0 {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return noop(s)
	}
	s = s.Clone()
	p, history, notices := e.Catalog.RecordPersonalRecords(s.Player, fields, e.now())
	s.Player = p
	s.PRHistory = append(s.PRHistory, history...)
	return Outcome{State: s, Notices: notices, Applied: true}
}

func (e *Engine) completeChallenge(s GameState, c CompleteChallenge) Outcome {
	i := -1
	for j := range s.Challenges {
		if s.Challenges[j].ID == c.ID {
			i = j
			break
		}
	}
	if i < 0 {
		return noop(s)
	}
	ch := s.Challenges[i]
	if ch.Completed || ch.Calc.Auto() {
		return noop(s)
	}
	s = s.Clone()
	s.Challenges[i].Completed = true
	notices := []Notice{notice(NoticeReward, "CHALLENGE COMPLETE: %s", ch.Label)}
	notices = append(notices, grant(&s, ch.XP, ch.Coins)...)
	return Outcome{State: s, Notices: notices, Applied: true}
}

func (e *Engine) trackWater(s GameState, c TrackWater) Outcome {
	next := s.Player.WaterIntakeToday + c.Glasses
	if next < 0 {
		next = 0
	}
	if next == s.Player.WaterIntakeToday {
		return noop(s)
	}
	s = s.Clone()
	s.Player.WaterIntakeToday = next
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Water today: %d glasses.", next)}, Applied: true}
}

func (e *Engine) takeColdShower(s GameState) Outcome {
	today := e.today()
	if s.Player.LastColdShowerDate == today {
		return noop(s)
	}
	s = s.Clone()
	s.Player.LastColdShowerDate = today
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Cryo-Protocol Complete: +3%% XP tomorrow!")}, Applied: true}
}

func (e *Engine) addPersonalQuest(s GameState, c AddPersonalQuest) Outcome {
	label := strings.TrimSpace(c.Label)
	if label == "" {
		return noop(s)
	}
	s = s.Clone()
	s.Quests = append(s.Quests, Quest{
		ID:    "p-" + e.NewID(),
		Label: label,
		XP:    PersonalQuestXP,
		Coins: PersonalQuestCoins,
		Kind:  QuestPersonal,
	})
	return Outcome{State: s, Notices: []Notice{notice(NoticeInfo, "Personal quest added: %s", label)}, Applied: true}
}

func withoutKind(quests []Quest, kind QuestKind) []Quest {
	out := quests[:0:0]
	for _, q := range quests {
		if q.Kind != kind {
			out = append(out, q)
		}
	}
	return out
}

func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
