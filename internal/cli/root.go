// Package cli provides the command-line interface for taskpad.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpad/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupWork  = "work"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskpad.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "taskpad",
		Short: "Task and note keeper with a deadline queue",
		Long: `taskpad keeps a list of tasks and a list of notes.

Tasks with a deadline inside the next three days are kept in a deadline
queue, and tasks due within a day trigger a reminder on the configured
notification channel. Tasks are removed as soon as they reach the
done or completed status.

Running taskpad without a command opens the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			c.SetOptions(opts)

			// Config commands must work with a broken or missing config file.
			if !needsStore(cmd) {
				return nil
			}

			if err := c.Open(cmd.Context()); err != nil {
				return err
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if c == nil || c.Planner == nil {
				return
			}
			if err := c.Planner.LastSaveErr(); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: changes were not saved: %v\n", err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (default: $TASKPAD_CONFIG or ~/.config/taskpad/config.toml)")
	root.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "Data directory (overrides data_dir from the config file)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupWork, Title: "Tasks and Notes:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupWork

	noteCmd := newNoteCommand(c)
	noteCmd.GroupID = groupWork

	queueCmd := newQueueCommand(c)
	queueCmd.GroupID = groupWork

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupWork

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		taskCmd,
		noteCmd,
		queueCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// needsStore reports whether cmd works on the task and note stores.
// Help, completion and everything under config do not.
func needsStore(cmd *cobra.Command) bool {
	for p := cmd; p != nil; p = p.Parent() {
		switch p.Name() {
		case "config", "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}
