package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskpad/internal/app"
	"github.com/runoshun/taskpad/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// Running taskpad without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks and notes.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the TUI on the alternate screen until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil || c.Planner == nil {
		return errors.New("store is not open")
	}
	showHelp := c.AppConfig == nil || c.AppConfig.TUI.ShowHelp
	p := tea.NewProgram(tui.New(c, showHelp), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
