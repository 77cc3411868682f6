package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpad/internal/app"
	"github.com/runoshun/taskpad/internal/usecase"
)

// newQueueCommand creates the queue command.
func newQueueCommand(c *app.Container) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "queue",
		Aliases: []string{"q"},
		Short:   "Show the deadline queue",
		Long: `Recompute and show the deadline queue.

The queue holds the tasks due within the configured horizon (3 days by
default), in creation order. Tasks due within the urgent window (1 day
by default) are marked "!" and a reminder is sent for each of them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowQueueUseCase().Execute(cmd.Context(), usecase.ShowQueueInput{})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printQueue(cmd.OutOrStdout(), out)
			for _, t := range out.Skipped {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: task #%d has an unreadable deadline %q\n", t.ID, t.Deadline)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output queued tasks as JSON")

	return cmd
}

// printQueue prints the queued tasks, marking urgent ones.
func printQueue(w io.Writer, out *usecase.ShowQueueOutput) {
	title := fmt.Sprintf("Deadline queue (next %s, reminders within %s)", formatSpan(out.Window.Horizon), formatSpan(out.Window.Urgent))
	printTitle(w, title, len(out.Tasks))
	if len(out.Tasks) == 0 {
		printNone(w)
		return
	}

	urgent := make(map[int]bool, len(out.Notifications))
	for _, n := range out.Notifications {
		urgent[n.TaskID] = true
	}

	tbl := newTable()
	tbl.AddRow("", "ID", "DEADLINE", "NAME")
	for _, t := range out.Tasks {
		mark := ""
		if urgent[t.ID] {
			mark = urgentStyle.Sprint("!")
		}
		tbl.AddRow(mark, idStyle.Sprintf("#%d", t.ID), t.Deadline, t.Name)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// formatSpan prints whole days as "3d" and anything else as a Go duration.
func formatSpan(d time.Duration) string {
	const day = 24 * time.Hour
	if d > 0 && d%day == 0 {
		return fmt.Sprintf("%dd", int64(d/day))
	}
	return d.String()
}
