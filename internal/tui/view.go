package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskpad/internal/domain"
)

const minPaneWidth = 30

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInputName, ModeInputDeadline, ModeInputTitle, ModeInputContent, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the tasks pane next to the queue and notes panes.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	right := lipgloss.JoinVertical(lipgloss.Left, m.viewQueue(), m.viewNotes())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewTasks(), " ", right))
	b.WriteString("\n")

	switch m.mode {
	case ModeConfirm:
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	case ModeInputName, ModeInputDeadline, ModeInputTitle, ModeInputContent:
		b.WriteString(m.viewInputDialog())
		b.WriteString("\n")
	case ModeNormal, ModeHelp:
	}

	switch {
	case m.err != nil:
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.info != "":
		b.WriteString(m.styles.Info.Render(m.info))
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter())
	return b.String()
}

// viewHeader renders the title and record counts.
func (m *Model) viewHeader() string {
	counts := fmt.Sprintf("%d tasks · %d queued · %d notes", len(m.tasks), len(m.queueTasks()), len(m.notes))
	return m.styles.Header.Render("taskpad") + "  " + m.styles.Footer.UnsetMarginTop().Render(counts)
}

// paneWidth returns the inner width of each column.
func (m *Model) paneWidth() int {
	// App padding (4), pane borders and padding (4 per pane), gap (1)
	w := (m.width - 4 - 8 - 1) / 2
	if w < minPaneWidth {
		w = minPaneWidth
	}
	return w
}

func (m *Model) paneStyle(pane Pane) lipgloss.Style {
	if m.pane == pane && m.mode != ModeHelp {
		return m.styles.PaneActive.Width(m.paneWidth())
	}
	return m.styles.Pane.Width(m.paneWidth())
}

// viewTasks renders the task list.
func (m *Model) viewTasks() string {
	lines := []string{m.styles.PaneTitle.Render("Tasks")}
	if len(m.tasks) == 0 {
		lines = append(lines, m.styles.Empty.Render("No tasks. Press n to add one."))
	}
	for i := range m.tasks {
		selected := m.pane == PaneTasks && i == m.taskCursor
		lines = append(lines, m.renderTask(&m.tasks[i], selected))
	}
	return m.paneStyle(PaneTasks).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderTask(task *domain.Task, selected bool) string {
	cursor := "  "
	nameStyle := m.styles.Item
	if selected {
		cursor = "> "
		nameStyle = m.styles.ItemSelected
	}

	mark := " "
	switch {
	case m.urgent[task.ID]:
		mark = m.styles.Urgent.Render("!")
	case m.queued[task.ID]:
		mark = m.styles.Queued.Render("*")
	}

	row := cursor +
		m.styles.ItemID.Render(fmt.Sprintf("#%d", task.ID)) +
		mark + " " +
		nameStyle.Render(task.Name) + " " +
		m.styles.StatusStyle(task.Status).Render("["+task.Status.Display()+"]")
	if task.HasDeadline() {
		row += " " + m.styles.Deadline.Render("due "+task.Deadline)
	}
	return row
}

// viewQueue renders the deadline queue as of the last recompute.
func (m *Model) viewQueue() string {
	lines := []string{m.styles.PaneTitle.Render("Deadline queue")}
	queued := m.queueTasks()
	if len(queued) == 0 {
		lines = append(lines, m.styles.Empty.Render("Nothing due soon."))
	}
	for _, t := range queued {
		style := m.styles.Queued
		if m.urgent[t.ID] {
			style = m.styles.Urgent
		}
		lines = append(lines, style.Render(t.Deadline)+"  "+m.styles.Item.Render(t.Name))
	}
	return m.styles.Pane.Width(m.paneWidth()).Render(strings.Join(lines, "\n"))
}

// viewNotes renders the note list.
func (m *Model) viewNotes() string {
	lines := []string{m.styles.PaneTitle.Render("Notes")}
	if len(m.notes) == 0 {
		lines = append(lines, m.styles.Empty.Render("No notes."))
	}
	for i, n := range m.notes {
		cursor := "  "
		style := m.styles.Item
		if m.pane == PaneNotes && i == m.noteCursor {
			cursor = "> "
			style = m.styles.ItemSelected
		}
		lines = append(lines, cursor+m.styles.ItemID.Render(fmt.Sprintf("#%d", n.ID))+style.Render(n.Title))
	}
	if n := m.SelectedNote(); n != nil && m.pane == PaneNotes {
		lines = append(lines, "", m.styles.Empty.UnsetItalic().Render(n.DisplayContent()))
	}
	return m.paneStyle(PaneNotes).Render(strings.Join(lines, "\n"))
}

// viewConfirmDialog renders the confirmation prompt.
func (m *Model) viewConfirmDialog() string {
	var question string
	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDeleteTask:
		question = fmt.Sprintf("Delete task #%d?", m.confirmID)
	case ConfirmFinishTask:
		question = fmt.Sprintf("Mark task #%d done?", m.confirmID)
	case ConfirmDeleteNote:
		question = fmt.Sprintf("Delete note #%d?", m.confirmID)
	}

	prompt := m.styles.DialogPrompt.Render(question)
	if m.confirmAction == ConfirmFinishTask {
		prompt += "\n" + m.styles.Footer.UnsetMarginTop().Render("Finished tasks are removed.")
	}
	buttons := m.styles.Footer.UnsetMarginTop().Render("[y] confirm  [any] cancel")
	return m.styles.Dialog.Render(prompt + "\n" + buttons)
}

// viewInputDialog renders the active text input with its step label.
func (m *Model) viewInputDialog() string {
	var label string
	switch m.mode {
	case ModeInputName:
		label = "New task · name"
	case ModeInputDeadline:
		if m.deadlineFor == 0 {
			label = "New task · deadline for " + m.pendingName
		} else {
			label = fmt.Sprintf("Deadline of task #%d", m.deadlineFor)
		}
	case ModeInputTitle:
		label = "New note · title"
	case ModeInputContent:
		label = "New note · content for " + m.pendingTitle
	case ModeNormal, ModeConfirm, ModeHelp:
		return ""
	}

	hint := m.styles.Footer.UnsetMarginTop().Render("enter submit  esc cancel")
	return m.styles.Dialog.BorderForeground(Colors.Primary).Render(
		m.styles.InputPrompt.Render(label) + "\n" + m.input.View() + "\n" + hint,
	)
}

// viewFooter renders the short key help.
func (m *Model) viewFooter() string {
	if !m.showHelp || m.mode != ModeNormal {
		return ""
	}
	return m.styles.Footer.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	title := m.styles.Header.Render("Keyboard shortcuts")
	return title + "\n" + m.help.FullHelpView(m.keys.FullHelp()) + "\n" +
		m.styles.Footer.Render("press ? or esc to close")
}
