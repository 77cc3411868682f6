package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskpad/internal/app"
	"github.com/runoshun/taskpad/internal/usecase"
)

// newNoteCommand creates the note command group.
func newNoteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"n"},
		Short:   "Manage notes",
		Long: `Manage free-form notes.

Notes have a title and optional content. They have no status and
never appear in the deadline queue.`,
	}

	cmd.AddCommand(
		newNoteAddCommand(c),
		newNoteListCommand(c),
		newNoteShowCommand(c),
		newNoteEditCommand(c),
		newNoteRmCommand(c),
	)
	return cmd
}

// newNoteAddCommand creates the note add command.
func newNoteAddCommand(c *app.Container) *cobra.Command {
	var content string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new note",
		Long: `Create a new note.

Examples:
  # Create a note
  taskpad note add "Lecture" --content "Chapter 4: graphs"

  # Create a note with content from stdin
  cat notes.txt | taskpad note add "Lecture" --content -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "-" {
				var err error
				if content, err = readInput(cmd.InOrStdin(), "-"); err != nil {
					return err
				}
			}

			out, err := c.NewNoteUseCase().Execute(cmd.Context(), usecase.NewNoteInput{
				Title:   args[0],
				Content: content,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created note #%d\n", out.Note.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&content, "content", "", `Note content ("-" reads stdin)`)

	return cmd
}

// newNoteListCommand creates the note list command.
func newNoteListCommand(c *app.Container) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListNotesUseCase().Execute(cmd.Context(), usecase.ListNotesInput{})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), out.Notes)
			}
			printNoteTable(cmd.OutOrStdout(), out.Notes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")

	return cmd
}

// newNoteShowCommand creates the note show command.
func newNoteShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid note ID: %w", err)
			}

			out, err := c.ShowNoteUseCase().Execute(cmd.Context(), usecase.ShowNoteInput{NoteID: noteID})
			if err != nil {
				return err
			}

			printNote(cmd.OutOrStdout(), out.Note)
			return nil
		},
	}
}

// newNoteEditCommand creates the note edit command.
func newNoteEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title   string
		Content string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Long: `Edit the title or content of a note in place.

Without --title or --content, the content is opened in $EDITOR.

Examples:
  # Rename note #1
  taskpad note edit 1 --title "Seminar"

  # Edit the content in your editor
  taskpad note edit 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid note ID: %w", err)
			}

			input := usecase.EditNoteInput{NoteID: noteID}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("content") {
				input.Content = &opts.Content
			}

			if input.Title == nil && input.Content == nil {
				return editNoteWithEditor(cmd, c, noteID)
			}

			if _, err := c.EditNoteUseCase().Execute(cmd.Context(), input); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated note #%d\n", noteID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New note title")
	cmd.Flags().StringVar(&opts.Content, "content", "", "New note content")

	return cmd
}

// editNoteWithEditor opens the note content in an editor and saves the result.
func editNoteWithEditor(cmd *cobra.Command, c *app.Container, noteID int) error {
	showOut, err := c.ShowNoteUseCase().Execute(cmd.Context(), usecase.ShowNoteInput{NoteID: noteID})
	if err != nil {
		return err
	}
	original := showOut.Note.Content

	tmpFile, err := os.CreateTemp("", fmt.Sprintf("taskpad-note-%d-*.md", noteID))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, writeErr := tmpFile.WriteString(original); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	if editorErr := openEditor(tmpPath, c.Executor); editorErr != nil {
		return editorErr
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to read edited file: %w", err)
	}

	content := strings.TrimRight(string(edited), "\n")
	if content == strings.TrimRight(original, "\n") {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No changes made")
		return nil
	}

	if _, err := c.EditNoteUseCase().Execute(cmd.Context(), usecase.EditNoteInput{
		NoteID:  noteID,
		Content: &content,
	}); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated note #%d\n", noteID)
	return nil
}

// newNoteRmCommand creates the note rm command.
func newNoteRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid note ID: %w", err)
			}

			out, err := c.DeleteNoteUseCase().Execute(cmd.Context(), usecase.DeleteNoteInput{NoteID: noteID})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted note #%d: %s\n", out.Note.ID, out.Note.Title)
			return nil
		},
	}
}
