package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/injazapp/injaz/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if err := ctx.KV.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Repo), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
