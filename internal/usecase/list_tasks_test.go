package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	e := newEnv(t)
	a := e.addTask(t, "a", daysFromNow(1))
	e.addTask(t, "b", "")
	c := e.addTask(t, "c", daysFromNow(10))
	_, err := NewSetTaskStatus(e.planner, nil).Execute(context.Background(), SetTaskStatusInput{TaskID: c.ID, Status: "in_progress"})
	require.NoError(t, err)

	uc := NewListTasks(e.planner)

	t.Run("all tasks in insertion order", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListTasksInput{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, taskNames(out.Tasks))
		assert.Equal(t, map[int]bool{a.ID: true}, out.Queued)
		assert.Equal(t, map[int]bool{a.ID: true}, out.Urgent)
	})

	t.Run("filter by status", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ListTasksInput{Status: "In Progress"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c"}, taskNames(out.Tasks))
	})

	t.Run("invalid status filter", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTasksInput{Status: "blocked"})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestListTasks_Empty(t *testing.T) {
	e := newEnv(t)

	out, err := NewListTasks(e.planner).Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.NotNil(t, out.Tasks)
	assert.Empty(t, out.Tasks)
}
