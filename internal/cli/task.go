package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpad/internal/app"
	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t"},
		Short:   "Manage tasks",
		Long: `Manage tasks.

Statuses are pending, in_progress, done and completed. The display
forms ("In Progress") are accepted too. A task that reaches done or
completed is removed together with every other finished task.

Deadlines are ISO dates (2026-10-21) or date-times (2026-10-21T17:00,
2026-10-21T17:00:00+09:00). Date-times without a zone use local time.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		newTaskAddCommand(c),
		newTaskListCommand(c),
		newTaskShowCommand(c),
		newTaskStatusCommand(c),
		newTaskDeadlineCommand(c),
		newTaskEditCommand(c),
		newTaskRmCommand(c),
		newTaskPruneCommand(c),
		newTaskImportCommand(c),
	)
	return cmd
}

// newTaskAddCommand creates the task add command.
func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Deadline    string
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new task",
		Long: `Create a new task with status pending.

Examples:
  # Create a task
  taskpad task add "Essay"

  # Create a task with a deadline and description
  taskpad task add "Essay" --deadline 2026-10-21 --desc "History essay"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				Name:        args[0],
				Description: opts.Description,
				Deadline:    opts.Deadline,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "Task description")
	cmd.Flags().StringVar(&opts.Deadline, "deadline", "", "Deadline (ISO date or date-time)")

	return cmd
}

// newTaskListCommand creates the task list command.
func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display tasks in creation order.

Tasks in the deadline queue are marked with "*", and tasks due
within the urgent window with "!".

Examples:
  # List all tasks
  taskpad task list

  # List tasks in progress
  taskpad task list --status in_progress

  # Print tasks as JSON
  taskpad task list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{
				Status: opts.Status,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Tasks)
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, out.Queued, out.Urgent)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Show only tasks with this status")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// newTaskShowCommand creates the task show command.
func newTaskShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}
			for _, t := range out.Tasks {
				if t.ID == taskID {
					printTaskDetails(cmd.OutOrStdout(), t)
					return nil
				}
			}
			return fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, taskID)
		},
	}
}

// newTaskStatusCommand creates the task status command.
func newTaskStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change the status of a task",
		Long: `Change the status of a task.

Setting done or completed removes the task, and every other finished task.

Examples:
  # Start working on task #1
  taskpad task status 1 in_progress

  # Finish task #1 (removes it)
  taskpad task status 1 done`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			out, err := c.SetTaskStatusUseCase().Execute(cmd.Context(), usecase.SetTaskStatusInput{
				TaskID: taskID,
				Status: args[1],
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Removed {
				_, _ = fmt.Fprintf(w, "Task #%d is %s and was removed\n", taskID, out.Task.Status.Display())
			} else {
				_, _ = fmt.Fprintf(w, "Task #%d is now %s\n", taskID, out.Task.Status.Display())
			}
			for _, t := range out.Pruned {
				if t.ID != taskID {
					_, _ = fmt.Fprintf(w, "Removed finished task #%d: %s\n", t.ID, t.Name)
				}
			}
			return nil
		},
	}
}

// newTaskDeadlineCommand creates the task deadline command.
func newTaskDeadlineCommand(c *app.Container) *cobra.Command {
	var clearDeadline bool

	cmd := &cobra.Command{
		Use:   "deadline <id> [deadline]",
		Short: "Set or clear the deadline of a task",
		Long: `Set or clear the deadline of a task.

Examples:
  # Set a date deadline
  taskpad task deadline 1 2026-10-21

  # Set a deadline with a time of day
  taskpad task deadline 1 2026-10-21T17:00

  # Remove the deadline
  taskpad task deadline 1 --clear`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			var deadline string
			switch {
			case clearDeadline && len(args) == 2:
				return errors.New("cannot use --clear with a deadline")
			case len(args) == 2:
				deadline = args[1]
			case !clearDeadline:
				return errors.New("deadline required (or --clear)")
			}

			out, err := c.SetTaskDeadlineUseCase().Execute(cmd.Context(), usecase.SetTaskDeadlineInput{
				TaskID:   taskID,
				Deadline: deadline,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Task.Deadline == "" {
				_, _ = fmt.Fprintf(w, "Cleared deadline of task #%d\n", taskID)
				return nil
			}
			_, _ = fmt.Fprintf(w, "Task #%d is due %s\n", taskID, out.Task.Deadline)
			if out.Queued {
				_, _ = fmt.Fprintln(w, queuedStyle.Sprint("Added to the deadline queue"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clearDeadline, "clear", false, "Remove the deadline")

	return cmd
}

// newTaskEditCommand creates the task edit command.
func newTaskEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit task name or description",
		Long: `Edit the name or description of a task.

Examples:
  # Rename task #1
  taskpad task edit 1 --name "Essay (final)"

  # Clear the description
  taskpad task edit 1 --desc ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			input := usecase.EditTaskInput{TaskID: taskID}
			if cmd.Flags().Changed("name") {
				input.Name = &opts.Name
			}
			if cmd.Flags().Changed("desc") {
				input.Description = &opts.Description
			}

			if _, err := c.EditTaskUseCase().Execute(cmd.Context(), input); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", taskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "New task name")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "New task description")

	return cmd
}

// newTaskRmCommand creates the task rm command.
func newTaskRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task regardless of its status.

Examples:
  # Delete task by ID
  taskpad task rm 1

  # Delete task using # prefix
  taskpad task rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", out.Task.ID, out.Task.Name)
			return nil
		},
	}
}

// newTaskPruneCommand creates the task prune command.
func newTaskPruneCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove finished tasks",
		Long: `Remove every task whose status is done or completed.

Finished tasks are normally removed as soon as they finish; prune
cleans up tasks that were imported with a finished status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.PruneTasksUseCase().Execute(cmd.Context(), usecase.PruneTasksInput{DryRun: dryRun})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.DeletedTasks) == 0 {
				_, _ = fmt.Fprintln(w, "No finished tasks")
				return nil
			}
			verb := "Deleted"
			if dryRun {
				verb = "Would delete"
			}
			for _, t := range out.DeletedTasks {
				_, _ = fmt.Fprintf(w, "%s task #%d: %s\n", verb, t.ID, t.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List finished tasks without deleting them")

	return cmd
}

// newTaskImportCommand creates the task import command.
func newTaskImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a Markdown file",
		Long: `Create tasks from a Markdown file. Use "-" to read standard input.

File format:
  ---
  name: Essay
  deadline: 2026-10-21
  ---
  Description here.

  ---
  name: Reading
  status: in_progress
  ---

Examples:
  # Preview tasks from a file without creating
  taskpad task import tasks.md --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			out, err := c.ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if dryRun {
				_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
				for i, t := range out.Tasks {
					_, _ = fmt.Fprintf(w, "  %d. %s [%s]", i+1, t.Name, t.Status)
					if t.Deadline != "" {
						_, _ = fmt.Fprintf(w, " due %s", t.Deadline)
					}
					_, _ = fmt.Fprintln(w)
				}
				return nil
			}
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(w, "Created task #%d: %s\n", t.ID, t.Name)
			}
			for _, t := range out.Removed {
				_, _ = fmt.Fprintf(w, "Skipped task #%d: %s is already %s\n", t.ID, t.Name, t.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview tasks without creating")

	return cmd
}

// parseID parses a task or note ID. A leading # is accepted.
func parseID(s string) (int, error) {
	s = strings.TrimPrefix(s, "#")
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("ID must be positive")
	}
	return id, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
