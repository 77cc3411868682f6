package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskpad/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	PaneTitle  lipgloss.Style
	PaneActive lipgloss.Style
	Pane       lipgloss.Style

	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemID       lipgloss.Style
	Deadline     lipgloss.Style
	Queued       lipgloss.Style
	Urgent       lipgloss.Style
	Empty        lipgloss.Style

	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style

	Dialog       lipgloss.Style
	DialogPrompt lipgloss.Style
	InputPrompt  lipgloss.Style

	Footer   lipgloss.Style
	Info     lipgloss.Style
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Colors.Muted).
		Padding(0, 1)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Pane:       pane,
		PaneActive: pane.BorderForeground(Colors.Primary),

		Item: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		ItemID: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(5),

		Deadline: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Queued: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Urgent: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 1),

		DialogPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		InputPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		Info: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
	}
}

// StatusStyle returns the style for a task status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone, domain.StatusCompleted:
		return s.StatusDone
	default:
		return s.StatusPending
	}
}
