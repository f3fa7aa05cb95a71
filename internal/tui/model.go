package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"liferpg/internal/engine"
	"liferpg/internal/oracle"
	"liferpg/internal/ui"
)

type boardModel struct {
	ctx    context.Context
	svc    *engine.Service
	oracle *oracle.Oracle
	user   string

	width  int
	height int

	state    *engine.GameState
	selected int

	motivation string
	lastLog    string
	loading    bool
	err        error
}

type loadedMsg struct {
	state   engine.GameState
	notices []engine.Notice
	err     error
}

type dispatchedMsg struct {
	out engine.Outcome
	err error
}

type undoneMsg struct {
	ok  bool
	err error
}

type motivationMsg struct {
	text string
}

func newBoardModel(ctx context.Context, svc *engine.Service, orc *oracle.Oracle, user string) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		oracle:  orc,
		user:    user,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, notices, err := m.svc.State(m.ctx, m.user)
		return loadedMsg{state: st, notices: notices, err: err}
	}
}

func (m boardModel) dispatchCmd(cmd engine.Command) tea.Cmd {
	return func() tea.Msg {
		out, err := m.svc.Dispatch(m.ctx, m.user, cmd)
		return dispatchedMsg{out: out, err: err}
	}
}

func (m boardModel) undoCmd() tea.Cmd {
	return func() tea.Msg {
		ok, err := m.svc.Undo(m.ctx, m.user)
		return undoneMsg{ok: ok, err: err}
	}
}

func (m boardModel) motivationCmd() tea.Cmd {
	if m.state == nil {
		return nil
	}
	level := m.state.Player.Level
	stats := m.state.Player.Stats
	return func() tea.Msg {
		return motivationMsg{text: m.oracle.Motivation(m.ctx, level, stats)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		st := msg.state
		m.state = &st
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		if len(msg.notices) > 0 {
			m.lastLog = noticeText(msg.notices)
		}
		return m, nil
	case dispatchedMsg:
		if msg.err != nil {
			m.lastLog = "Failed: " + msg.err.Error()
			return m, nil
		}
		st := msg.out.State
		m.state = &st
		m.clampSelection()
		switch {
		case len(msg.out.Notices) > 0:
			m.lastLog = noticeText(msg.out.Notices)
		case !msg.out.Applied:
			m.lastLog = "Nothing happened."
		}
		return m, nil
	case undoneMsg:
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, nil
		}
		if !msg.ok {
			m.lastLog = "Nothing to undo."
			return m, nil
		}
		m.lastLog = "Restored previous state."
		return m, m.loadCmd()
	case motivationMsg:
		m.motivation = msg.text
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.state != nil && m.selected < len(m.state.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			q, ok := m.selectedQuest()
			if !ok {
				return m, nil
			}
			if q.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			if q.Kind == engine.QuestTracker {
				m.lastLog = "Log sleep from the CLI: lrpg sleep <hours>"
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", q.ID)
			return m, m.dispatchCmd(engine.CompleteQuest{ID: q.ID})
		case "h":
			return m, m.dispatchCmd(engine.ToggleHardcore{})
		case "s":
			return m, m.dispatchCmd(engine.ToggleSickness{})
		case "w":
			return m, m.dispatchCmd(engine.TrackWater{Glasses: 1})
		case "W":
			return m, m.dispatchCmd(engine.TrackWater{Glasses: -1})
		case "x":
			return m, m.dispatchCmd(engine.TakeColdShower{})
		case "u":
			return m, m.undoCmd()
		case "m":
			m.motivation = "Consulting the oracle…"
			return m, m.motivationCmd()
		}
	}
	return m, nil
}

func (m *boardModel) clampSelection() {
	if m.state == nil {
		m.selected = 0
		return
	}
	if m.selected >= len(m.state.Quests) {
		m.selected = len(m.state.Quests) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) selectedQuest() (engine.Quest, bool) {
	if m.state == nil || m.selected < 0 || m.selected >= len(m.state.Quests) {
		return engine.Quest{}, false
	}
	return m.state.Quests[m.selected], true
}

func noticeText(notices []engine.Notice) string {
	parts := make([]string, 0, len(notices))
	for _, n := range notices {
		parts = append(parts, n.Message)
	}
	return strings.Join(parts, " | ")
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "LifeRPG — loading…"
	}
	p := m.state.Player
	bar := progressBar(p.XP, engine.XPThreshold(p.Level), 30)
	flags := ""
	if p.HardcoreMode {
		flags += " [HARDCORE]"
	}
	if p.SicknessActive {
		flags += " [SICK]"
	}
	return fmt.Sprintf("LifeRPG | %s | Level %d | XP %d/%d %s | Streak %d%s",
		m.user, p.Level, p.XP, engine.XPThreshold(p.Level), bar, p.Streak, flags)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Stats\n\nLoading…"
	}
	p := m.state.Player
	lines := []string{"Stats"}
	for _, k := range engine.StatKinds {
		lines = append(lines, fmt.Sprintf("- %-9s %s", k, tierBar(p.Stats[k])))
	}
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Coins %d  Vault %d", p.CoinsActive, p.CoinsBank))
	lines = append(lines, fmt.Sprintf("Water %d  Sleep avg %.1fh", p.WaterIntakeToday, engine.AverageSleep(m.state.SleepHistory)))
	season := engine.SeasonFor(time.Now())
	lines = append(lines, fmt.Sprintf("Season %d  Day %d  Week %d", season.Season, season.Day, season.Week))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- w/W: water +1/-1")
	lines = append(lines, "- x: cold shower")
	lines = append(lines, "- h: hardcore  s: sick")
	lines = append(lines, "- m: motivate  u: undo")
	lines = append(lines, "- r: refresh  q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	if m.motivation != "" {
		out = append(out, ui.Panel.Render(ui.IconSparkle+" "+m.motivation), "")
	}
	out = append(out, ui.PanelTitle.Render("Quest Log"))
	if m.state == nil || len(m.state.Quests) == 0 {
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}
	for i, q := range m.state.Quests {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		check := "[ ]"
		if q.Completed {
			check = "[x]"
		}
		line := fmt.Sprintf("%s%s %s %s (+%d xp, %s)", cursor, check, ui.KindIcon(q.Kind), q.Label, q.XP, strings.ToLower(string(q.Kind)))
		if i == m.selected {
			line = ui.SelectedRow.Render(line)
		}
		out = append(out, line)
	}
	if b, ok := engine.NextBoss(*m.state); ok {
		out = append(out, "", fmt.Sprintf("Next boss: %s at %d-day streak", b.Name, b.MinStreak))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func tierBar(tier int) string {
	if tier < 0 {
		tier = 0
	}
	if tier > engine.TierCount {
		tier = engine.TierCount
	}
	return "[" + strings.Repeat("#", tier) + strings.Repeat("-", engine.TierCount-tier) + "]"
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
