package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/blocksmith/internal/cli"
	"github.com/julianstephens/blocksmith/internal/logger"
	"github.com/julianstephens/blocksmith/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", "error", err)
		return err
	}
	return nil
}
