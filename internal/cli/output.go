package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/runoshun/taskpad/internal/domain"
)

// Text styles. fatih/color disables them when stdout is not a terminal.
var (
	headerStyle = color.New(color.Bold, color.Underline)
	idStyle     = color.New(color.FgHiYellow)
	faintStyle  = color.New(color.Faint, color.Italic)
	urgentStyle = color.New(color.FgHiRed, color.Bold)
	queuedStyle = color.New(color.FgYellow)
)

// statusStyle returns the color used for a status.
func statusStyle(s domain.Status) *color.Color {
	switch s {
	case domain.StatusInProgress:
		return color.New(color.FgCyan)
	case domain.StatusDone, domain.StatusCompleted:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Separator = "  "
	return tbl
}

func printTitle(w io.Writer, title string, count int) {
	noun := "entries"
	if count == 1 {
		noun = "entry"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", headerStyle.Sprint(title), faintStyle.Sprintf("- %d %s", count, noun))
}

func printNone(w io.Writer) {
	_, _ = fmt.Fprintln(w, faintStyle.Sprint("  none"))
}

// printTaskTable prints tasks as a table. Queued tasks are marked with "*",
// urgent ones with "!".
func printTaskTable(w io.Writer, tasks []domain.Task, queued, urgent map[int]bool) {
	printTitle(w, "Tasks", len(tasks))
	if len(tasks) == 0 {
		printNone(w)
		return
	}

	tbl := newTable()
	tbl.AddRow("ID", "STATUS", "DEADLINE", "", "NAME")
	for _, t := range tasks {
		mark := ""
		switch {
		case urgent[t.ID]:
			mark = urgentStyle.Sprint("!")
		case queued[t.ID]:
			mark = queuedStyle.Sprint("*")
		}
		deadline := t.Deadline
		if deadline == "" {
			deadline = "-"
		}
		tbl.AddRow(
			idStyle.Sprintf("#%d", t.ID),
			statusStyle(t.Status).Sprint(t.Status.Display()),
			deadline,
			mark,
			t.Name,
		)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// printTaskDetails prints a single task.
func printTaskDetails(w io.Writer, t domain.Task) {
	tbl := newTable()
	tbl.Wrap = true
	tbl.AddRow("ID:", idStyle.Sprintf("#%d", t.ID))
	tbl.AddRow("Name:", t.Name)
	tbl.AddRow("Status:", statusStyle(t.Status).Sprint(t.Status.Display()))
	if t.Deadline != "" {
		tbl.AddRow("Deadline:", t.Deadline)
	}
	if t.Description != "" {
		tbl.AddRow("Description:", t.Description)
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// printNoteTable prints notes with the first line of their content.
func printNoteTable(w io.Writer, notes []domain.Note) {
	printTitle(w, "Notes", len(notes))
	if len(notes) == 0 {
		printNone(w)
		return
	}

	tbl := newTable()
	tbl.AddRow("ID", "TITLE", "CONTENT")
	for _, n := range notes {
		tbl.AddRow(idStyle.Sprintf("#%d", n.ID), n.Title, firstLine(n.Content))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

// printNote prints a note title followed by its content.
func printNote(w io.Writer, n domain.Note) {
	_, _ = fmt.Fprintf(w, "%s %s\n\n", idStyle.Sprintf("#%d", n.ID), headerStyle.Sprint(n.Title))
	_, _ = fmt.Fprintln(w, n.DisplayContent())
}

// firstLine returns the first line of s, marking that more follows.
func firstLine(s string) string {
	line, rest, found := strings.Cut(s, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + " ..."
	}
	return line
}
