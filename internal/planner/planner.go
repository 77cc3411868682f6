// Package planner holds the task and note stores and keeps the persisted
// snapshot and the deadline queue in step with every mutation.
package planner

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/persistence"
	"github.com/runoshun/taskpad/internal/records"
	"github.com/runoshun/taskpad/internal/scheduler"
)

// TaskHandle is a live reference to a task owned by the planner.
type TaskHandle = records.Handle[*domain.Task]

// NoteHandle is a live reference to a note owned by the planner.
type NoteHandle = records.Handle[*domain.Note]

// TaskFields holds the caller-supplied fields of a new task.
type TaskFields struct {
	Name        string
	Description string
	Deadline    string
	Status      domain.Status // Empty means pending
}

// NoteFields holds the caller-supplied fields of a new note.
type NoteFields struct {
	Title   string
	Content string
}

// Planner is the single owner of both record stores.
// Task mutations run mutate, save, recompute in that order.
// Note mutations run mutate, save.
// Planner is not safe for concurrent use.
type Planner struct {
	tasks       *records.Store[*domain.Task]
	notes       *records.Store[*domain.Note]
	persist     *persistence.Adapter
	scheduler   *scheduler.Scheduler
	logger      domain.Logger
	lastSaveErr error
}

// New creates an empty Planner. Call Open to load the persisted snapshot.
func New(persist *persistence.Adapter, sched *scheduler.Scheduler, logger domain.Logger) *Planner {
	return &Planner{
		tasks:     records.NewStore[*domain.Task](),
		notes:     records.NewStore[*domain.Note](),
		persist:   persist,
		scheduler: sched,
		logger:    logger,
	}
}

// Open loads the snapshot, drops finished tasks left over from an earlier
// session, writes the result back and recomputes the deadline queue.
// Unreadable slots are logged and start empty.
func (p *Planner) Open(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.persist != nil {
		snap, err := p.persist.Load()
		if err != nil && p.logger != nil {
			p.logger.Warn("persist", err.Error())
		}
		p.tasks.Restore(taskPointers(snap.Tasks), snap.TaskCounter)
		p.notes.Restore(notePointers(snap.Notes), snap.NoteCounter)
		if p.logger != nil {
			p.logger.Debug("persist", fmt.Sprintf("restored %d tasks, %d notes", p.tasks.Len(), p.notes.Len()))
		}
	}

	p.tasks.PruneWhere((*domain.Task).IsFinished)
	p.save()
	p.Recompute()
	return nil
}

// CreateTask appends a new task and returns its handle.
// A task created with a finished status is pruned at once, like one that
// reaches it through SetStatus, and the returned handle is already stale.
func (p *Planner) CreateTask(f TaskFields) *TaskHandle {
	status := f.Status
	if status == "" {
		status = domain.StatusPending
	}
	h := p.tasks.Create(func(id int) *domain.Task {
		return &domain.Task{
			ID:          id,
			Name:        f.Name,
			Description: f.Description,
			Deadline:    f.Deadline,
			Status:      status,
		}
	})
	if status.IsFinished() {
		p.tasks.PruneWhere((*domain.Task).IsFinished)
	}
	p.taskChanged()
	return h
}

// SetStatus changes the status of a task. Reaching a finished status prunes
// every finished task, so the return value reports whether h itself was
// removed and must be discarded by the caller.
func (p *Planner) SetStatus(h *TaskHandle, status domain.Status) (removed bool) {
	if !h.Live() {
		return false
	}
	h.Value().Status = status
	if status.IsFinished() {
		p.tasks.PruneWhere((*domain.Task).IsFinished)
	}
	p.taskChanged()
	return !h.Live()
}

// SetDeadline replaces the deadline of a task. An empty deadline clears it.
func (p *Planner) SetDeadline(h *TaskHandle, deadline string) {
	if !h.Live() {
		return
	}
	h.Value().Deadline = deadline
	p.taskChanged()
}

// EditTask replaces the name and description of a task.
func (p *Planner) EditTask(h *TaskHandle, name, description string) {
	if !h.Live() {
		return
	}
	t := h.Value()
	t.Name = name
	t.Description = description
	p.taskChanged()
}

// RemoveTask removes a task. Stale handles are ignored.
func (p *Planner) RemoveTask(h *TaskHandle) {
	if !h.Live() {
		return
	}
	p.tasks.Remove(h)
	p.taskChanged()
}

// PruneFinished removes every finished task and returns the removed tasks.
func (p *Planner) PruneFinished() []*domain.Task {
	removed := p.tasks.PruneWhere((*domain.Task).IsFinished)
	if len(removed) > 0 {
		p.taskChanged()
	}
	return removed
}

// CreateNote appends a new note and returns its handle.
func (p *Planner) CreateNote(f NoteFields) *NoteHandle {
	h := p.notes.Create(func(id int) *domain.Note {
		return &domain.Note{ID: id, Title: f.Title, Content: f.Content}
	})
	p.save()
	return h
}

// EditNote replaces the title and content of a note in place.
func (p *Planner) EditNote(h *NoteHandle, title, content string) {
	if !h.Live() {
		return
	}
	n := h.Value()
	n.Title = title
	n.Content = content
	p.save()
}

// RemoveNote removes a note. Stale handles are ignored.
func (p *Planner) RemoveNote(h *NoteHandle) {
	if !h.Live() {
		return
	}
	p.notes.Remove(h)
	p.save()
}

// FindTask returns the handle of the task with the given id, or nil.
func (p *Planner) FindTask(id int) *TaskHandle {
	return p.tasks.FindByID(id)
}

// FindNote returns the handle of the note with the given id, or nil.
func (p *Planner) FindNote(id int) *NoteHandle {
	return p.notes.FindByID(id)
}

// Tasks returns the tasks in insertion order.
func (p *Planner) Tasks() []*domain.Task {
	return p.tasks.Values()
}

// TaskHandles returns the task handles in insertion order.
func (p *Planner) TaskHandles() []*TaskHandle {
	return p.tasks.Handles()
}

// Notes returns the notes in insertion order.
func (p *Planner) Notes() []*domain.Note {
	return p.notes.Values()
}

// NoteHandles returns the note handles in insertion order.
func (p *Planner) NoteHandles() []*NoteHandle {
	return p.notes.Handles()
}

// Queue returns the current deadline queue, front first.
func (p *Planner) Queue() []*domain.Task {
	if p.scheduler == nil {
		return nil
	}
	return p.scheduler.Queue()
}

// Window returns the deadline window the queue is computed with.
func (p *Planner) Window() scheduler.Window {
	if p.scheduler == nil {
		return scheduler.Window{}
	}
	return p.scheduler.Window()
}

// Recompute rebuilds the deadline queue from the current tasks and sends
// reminders for urgent ones.
func (p *Planner) Recompute() scheduler.Result {
	if p.scheduler == nil {
		return scheduler.Result{}
	}
	return p.scheduler.Recompute(p.tasks.Values())
}

// Urgent returns the ids of the tasks that were notified by the most recent
// recompute, without recomputing.
func (p *Planner) Urgent() map[int]bool {
	urgent := make(map[int]bool)
	if p.scheduler == nil {
		return urgent
	}
	for _, n := range p.scheduler.Last().Notifications {
		urgent[n.TaskID] = true
	}
	return urgent
}

// LastSaveErr returns the error of the most recent save, or nil.
func (p *Planner) LastSaveErr() error {
	return p.lastSaveErr
}

// Snapshot returns the persisted form of both stores.
func (p *Planner) Snapshot() domain.Snapshot {
	taskCounter := p.tasks.NextID()
	noteCounter := p.notes.NextID()

	snap := domain.Snapshot{
		Tasks:       make([]domain.Task, 0, p.tasks.Len()),
		Notes:       make([]domain.Note, 0, p.notes.Len()),
		TaskCounter: &taskCounter,
		NoteCounter: &noteCounter,
	}
	for _, t := range p.tasks.Values() {
		snap.Tasks = append(snap.Tasks, *t)
	}
	for _, n := range p.notes.Values() {
		snap.Notes = append(snap.Notes, *n)
	}
	return snap
}

func (p *Planner) taskChanged() {
	p.save()
	p.Recompute()
}

// save persists both stores. Failures are kept for LastSaveErr and logged;
// the in-memory stores stay authoritative.
func (p *Planner) save() {
	if p.persist == nil {
		return
	}
	p.lastSaveErr = p.persist.Save(p.Snapshot())
	if p.lastSaveErr != nil && p.logger != nil {
		p.logger.Error("persist", p.lastSaveErr.Error())
	}
}

func taskPointers(raw []domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(raw))
	for i := range raw {
		t := raw[i]
		out = append(out, &t)
	}
	return out
}

func notePointers(raw []domain.Note) []*domain.Note {
	out := make([]*domain.Note, 0, len(raw))
	for i := range raw {
		n := raw[i]
		out = append(out, &n)
	}
	return out
}
