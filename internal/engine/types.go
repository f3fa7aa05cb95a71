package engine

import (
	"fmt"
	"strings"
)

type StatKind string

const (
	StatPullups  StatKind = "pullups"
	StatPushups  StatKind = "pushups"
	StatSquats   StatKind = "squats"
	StatStamina  StatKind = "stamina"
	StatReaction StatKind = "reaction"
	StatVitality StatKind = "vitality"
)

// StatKinds is the fixed display and evaluation order.
var StatKinds = []StatKind{StatPullups, StatPushups, StatSquats, StatStamina, StatReaction, StatVitality}

func (k StatKind) IsValid() bool {
	switch k {
	case StatPullups, StatPushups, StatSquats, StatStamina, StatReaction, StatVitality:
		return true
	default:
		return false
	}
}

// LowerIsBetter reports whether smaller values rank higher for this stat.
func (k StatKind) LowerIsBetter() bool {
	return k == StatReaction
}

func (k StatKind) Label() string {
	switch k {
	case StatPullups:
		return "Strength (Pullups)"
	case StatPushups:
		return "Strength (Pushups)"
	case StatSquats:
		return "Strength (Squats)"
	case StatStamina:
		return "Stamina"
	case StatReaction:
		return "Reaction Time"
	case StatVitality:
		return "Sleep"
	default:
		return string(k)
	}
}

type QuestKind string

const (
	QuestDaily    QuestKind = "DAILY"
	QuestRandom   QuestKind = "RANDOM"
	QuestHardcore QuestKind = "HARDCORE"
	QuestTracker  QuestKind = "TRACKER"
	QuestPersonal QuestKind = "PERSONAL"
)

func (k QuestKind) IsValid() bool {
	switch k {
	case QuestDaily, QuestRandom, QuestHardcore, QuestTracker, QuestPersonal:
		return true
	default:
		return false
	}
}

type BossTier string

const (
	BossMini      BossTier = "MINI"
	BossElite     BossTier = "ELITE"
	BossLegendary BossTier = "LEGENDARY"
	BossMythic    BossTier = "MYTHIC"
	BossFinal     BossTier = "FINAL"
	BossSeasonal  BossTier = "SEASONAL"
)

func (t BossTier) IsValid() bool {
	switch t {
	case BossMini, BossElite, BossLegendary, BossMythic, BossFinal, BossSeasonal:
		return true
	default:
		return false
	}
}

type MealKind string

const (
	MealBreakfast MealKind = "BREAKFAST"
	MealLunch     MealKind = "LUNCH"
	MealDinner    MealKind = "DINNER"
	MealSnack     MealKind = "SNACK"
)

func (m MealKind) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	default:
		return false
	}
}

type TxKind string

const (
	TxDeposit  TxKind = "DEPOSIT"
	TxWithdraw TxKind = "WITHDRAW"
)

// ChallengeCalc names the automatic evaluation of a challenge.
// CalcNone means the challenge is marked complete by hand.
type ChallengeCalc string

const (
	CalcNone           ChallengeCalc = ""
	CalcFoodStreak     ChallengeCalc = "FOOD_STREAK"
	CalcWaterStreak    ChallengeCalc = "WATER_STREAK"
	CalcHardcoreStreak ChallengeCalc = "HARDCORE_STREAK"
	CalcJoker          ChallengeCalc = "JOKER"
)

func (c ChallengeCalc) IsValid() bool {
	switch c {
	case CalcNone, CalcFoodStreak, CalcWaterStreak, CalcHardcoreStreak, CalcJoker:
		return true
	default:
		return false
	}
}

// Auto reports whether the challenge is evaluated from history.
func (c ChallengeCalc) Auto() bool {
	return c != CalcNone
}

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeReward  NoticeKind = "reward"
	NoticePenalty NoticeKind = "penalty"
	NoticeLevelUp NoticeKind = "level_up"
	NoticeTierUp  NoticeKind = "tier_up"
	NoticeSeason  NoticeKind = "season"
)

// Notice is a user-facing message produced by a state transition.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func notice(kind NoticeKind, format string, args ...any) Notice {
	return Notice{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ParseMeal parses user input to a MealKind.
func ParseMeal(input string) (MealKind, error) {
	m := MealKind(strings.ToUpper(strings.TrimSpace(input)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid meal: %q (breakfast|lunch|dinner|snack)", input)
	}
	return m, nil
}

// ParseStatKind parses user input to a StatKind. A few aliases are accepted.
func ParseStatKind(input string) (StatKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "emom", "endurance":
		return StatStamina, nil
	case "reactiontime", "reaction_time":
		return StatReaction, nil
	case "sleep":
		return StatVitality, nil
	}
	k := StatKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid stat: %q", input)
	}
	return k, nil
}
