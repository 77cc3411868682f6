package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/persistence"
	"github.com/runoshun/taskpad/internal/planner"
	"github.com/runoshun/taskpad/internal/scheduler"
	"github.com/runoshun/taskpad/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.Local)

// env bundles a planner over in-memory doubles.
type env struct {
	planner  *planner.Planner
	store    *testutil.MemorySlotStore
	notifier *testutil.RecordingNotifier
	logger   *testutil.RecordingLogger
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		store:    testutil.NewMemorySlotStore(),
		notifier: &testutil.RecordingNotifier{},
		logger:   &testutil.RecordingLogger{},
	}
	sched := scheduler.New(e.notifier, &testutil.MockClock{NowTime: testNow}, e.logger, scheduler.DefaultWindow())
	e.planner = planner.New(persistence.New(e.store), sched, e.logger)
	require.NoError(t, e.planner.Open(context.Background()))
	return e
}

func (e *env) addTask(t *testing.T, name, deadline string) domain.Task {
	t.Helper()
	out, err := NewNewTask(e.planner, nil).Execute(context.Background(), NewTaskInput{Name: name, Deadline: deadline})
	require.NoError(t, err)
	return out.Task
}

func (e *env) addNote(t *testing.T, title, content string) domain.Note {
	t.Helper()
	out, err := NewNewNote(e.planner, nil).Execute(context.Background(), NewNoteInput{Title: title, Content: content})
	require.NoError(t, err)
	return out.Note
}

func daysFromNow(n int) string {
	return testNow.AddDate(0, 0, n).Format(domain.DateLayout)
}

func strPtr(s string) *string { return &s }

func taskNames(tasks []domain.Task) []string {
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	return names
}
