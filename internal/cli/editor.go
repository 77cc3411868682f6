package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
)

// getEditor returns the user's preferred editor from environment variables.
// It checks EDITOR, then VISUAL, and defaults to vi if neither is set.
func getEditor() string {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = "vi"
	}
	return editor
}

// openEditor opens the specified file in the user's editor.
// Editors given with arguments ("code --wait") are split on whitespace.
func openEditor(filePath string, executor domain.CommandExecutor) error {
	if executor == nil {
		return errors.New("no command executor")
	}

	editor := getEditor()
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return errors.New("no editor configured")
	}
	args := append(fields[1:], filePath)

	if err := executor.ExecuteInteractive(domain.NewCommand(fields[0], args, "")); err != nil {
		return fmt.Errorf("failed to run editor %s: %w", editor, err)
	}
	return nil
}
