package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importContent = `---
name: Essay
deadline: 2026-10-21
---
Draft the history essay.
---
name: Reading
status: in_progress
---
`

func TestImportTasks_Execute(t *testing.T) {
	e := newEnv(t)
	e.addTask(t, "existing", "")

	out, err := NewImportTasks(e.planner, e.logger).Execute(context.Background(), ImportTasksInput{Content: importContent})
	require.NoError(t, err)

	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 2, out.Tasks[0].ID)
	assert.Equal(t, "Essay", out.Tasks[0].Name)
	assert.Equal(t, "Draft the history essay.", out.Tasks[0].Description)
	assert.Equal(t, "2026-10-21", out.Tasks[0].Deadline)
	assert.Equal(t, domain.StatusPending, out.Tasks[0].Status)
	assert.Equal(t, 3, out.Tasks[1].ID)
	assert.Equal(t, domain.StatusInProgress, out.Tasks[1].Status)

	assert.Equal(t, []string{"existing", "Essay", "Reading"}, taskNamesPtr(e.planner.Tasks()))
	assert.Equal(t, []string{"Essay"}, taskNamesPtr(e.planner.Queue()))
}

func TestImportTasks_FinishedTasksArePruned(t *testing.T) {
	e := newEnv(t)
	content := "---\nname: Old chore\nstatus: done\ndeadline: " + daysFromNow(0) + "\n---\n" +
		"---\nname: Essay\n---\n"

	out, err := NewImportTasks(e.planner, e.logger).Execute(context.Background(), ImportTasksInput{Content: content})
	require.NoError(t, err)

	assert.Equal(t, []string{"Essay"}, taskNames(out.Tasks))
	require.Len(t, out.Removed, 1)
	assert.Equal(t, 1, out.Removed[0].ID)
	assert.Equal(t, domain.StatusDone, out.Removed[0].Status)

	assert.Nil(t, e.planner.FindTask(1))
	assert.Equal(t, []string{"Essay"}, taskNamesPtr(e.planner.Tasks()))
	assert.Empty(t, e.planner.Queue())
	assert.Empty(t, e.notifier.Sent)
}

func TestImportTasks_DryRun(t *testing.T) {
	e := newEnv(t)

	out, err := NewImportTasks(e.planner, nil).Execute(context.Background(), ImportTasksInput{
		Content: importContent,
		DryRun:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Essay", "Reading"}, taskNames(out.Tasks))
	assert.Zero(t, out.Tasks[0].ID)
	assert.Empty(t, e.planner.Tasks())
}

func TestImportTasks_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty", "", domain.ErrEmptyFile},
		{"missing name", "---\ndeadline: 2026-10-21\n---\n", domain.ErrEmptyName},
		{"bad status", "---\nname: a\nstatus: later\n---\n", domain.ErrInvalidStatus},
		{"bad deadline", "---\nname: a\ndeadline: someday\n---\n", domain.ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)

			_, err := NewImportTasks(e.planner, nil).Execute(context.Background(), ImportTasksInput{Content: tt.content})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, e.planner.Tasks())
		})
	}
}
