package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_HasDeadline(t *testing.T) {
	assert.False(t, (&Task{Name: "chore"}).HasDeadline())
	assert.True(t, (&Task{Name: "essay", Deadline: "2026-10-21"}).HasDeadline())
}

func TestTask_IsFinished(t *testing.T) {
	task := &Task{ID: 3, Status: StatusInProgress}
	assert.False(t, task.IsFinished())
	assert.Equal(t, 3, task.RecordID())

	task.Status = StatusCompleted
	assert.True(t, task.IsFinished())
}

func TestNote_DisplayContent(t *testing.T) {
	assert.Equal(t, "(empty)", (&Note{Title: "blank"}).DisplayContent())
	assert.Equal(t, "graphs", (&Note{Title: "lecture", Content: "graphs"}).DisplayContent())
}

func TestNotification_Message(t *testing.T) {
	n := Notification{TaskID: 2, Name: "Essay", Deadline: "2026-10-20T09:00"}
	assert.Equal(t, `Reminder: task "Essay" is due at 2026-10-20T09:00.`, n.Message())
}
