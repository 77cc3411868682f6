package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Execute(t *testing.T) {
	e := newEnv(t)
	uc := NewNewTask(e.planner, e.logger)

	out, err := uc.Execute(context.Background(), NewTaskInput{
		Name:        "  Essay  ",
		Description: "history",
		Deadline:    daysFromNow(2),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, "Essay", out.Task.Name)
	assert.Equal(t, "history", out.Task.Description)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
	assert.Equal(t, []string{"Essay"}, taskNamesPtr(e.planner.Queue()))
	assert.Contains(t, string(e.store.Slots[domain.SlotTasks]), `"Essay"`)
	require.NotEmpty(t, e.logger.Entries)
	assert.Equal(t, "task", e.logger.Entries[len(e.logger.Entries)-1].Category)
}

func TestNewTask_IDsIncrease(t *testing.T) {
	e := newEnv(t)

	a := e.addTask(t, "a", "")
	b := e.addTask(t, "b", "")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
}

func TestNewTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      NewTaskInput
		wantErr error
	}{
		{"empty name", NewTaskInput{Name: ""}, domain.ErrEmptyName},
		{"blank name", NewTaskInput{Name: "   "}, domain.ErrEmptyName},
		{"bad deadline", NewTaskInput{Name: "x", Deadline: "tomorrow"}, domain.ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			_, err := NewNewTask(e.planner, nil).Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.planner.Tasks())
		})
	}
}

func taskNamesPtr(tasks []*domain.Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}
