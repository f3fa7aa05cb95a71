package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"liferpg/internal/engine"
)

// LifeRPG theme (CLI + TUI).
// Kept small: reusable styles and a few emojis.

const (
	IconQuest    = "🗺️"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconScroll   = "📜"
	IconUndo     = "↩️"
	IconBoss     = "⚔️"
	IconSleep    = "😴"
	IconWater    = "💧"
	IconCoin     = "🪙"
	IconVault    = "🏦"
	IconSick     = "🤒"
	IconFire     = "🔥"
	IconCalendar = "📅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func DoneText(done bool) string {
	if done {
		return Good.Render(IconDone + " done")
	}
	return Warn.Render("open")
}

func KindIcon(kind engine.QuestKind) string {
	switch kind {
	case engine.QuestHardcore:
		return IconFire
	case engine.QuestRandom:
		return IconBolt
	case engine.QuestPersonal:
		return IconScroll
	case engine.QuestTracker:
		return IconSleep
	default:
		return IconQuest
	}
}

// NoticeLine renders a notice with a style matching its kind.
func NoticeLine(n engine.Notice) string {
	switch n.Kind {
	case engine.NoticeLevelUp:
		return BadgeLevelUp + " " + Gold.Render(n.Message)
	case engine.NoticeTierUp:
		return Gold.Render(IconTrophy + " " + n.Message)
	case engine.NoticeReward:
		return Good.Render(IconSparkle+" ") + n.Message
	case engine.NoticePenalty:
		return Bad.Render(IconWarn+" ") + n.Message
	case engine.NoticeSeason:
		return H2.Render(IconCalendar + " " + n.Message)
	default:
		return Muted.Render(n.Message)
	}
}

// TierText renders a stat tier as filled and empty pips.
func TierText(tier, max int) string {
	if tier < 0 {
		tier = 0
	}
	if tier > max {
		tier = max
	}
	return Gold.Render(strings.Repeat("★", tier)) + Muted.Render(strings.Repeat("☆", max-tier))
}
