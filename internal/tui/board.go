package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"liferpg/internal/engine"
	"liferpg/internal/oracle"
)

func RunBoard(ctx context.Context, svc *engine.Service, orc *oracle.Oracle, user string, out io.Writer) error {
	m := newBoardModel(ctx, svc, orc, user)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
