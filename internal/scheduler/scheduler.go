// Package scheduler derives the deadline queue from the task store and
// decides which tasks are urgent enough to notify about.
package scheduler

import (
	"fmt"
	"time"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/records"
)

// Window configures the deadline queue.
type Window struct {
	Horizon time.Duration // Tasks due within Horizon are queued
	Urgent  time.Duration // Tasks due within Urgent are notified
}

// DefaultWindow returns the 3 day horizon with a 1 day urgent window.
func DefaultWindow() Window {
	return Window{Horizon: domain.DefaultHorizon, Urgent: domain.DefaultUrgent}
}

// Result is the outcome of a recompute.
type Result struct {
	Due           []*domain.Task        // Tasks inside the window, in store order
	Notifications []domain.Notification // One per urgent task
	Skipped       []*domain.Task        // Tasks whose deadline could not be parsed
}

// Recompute computes the deadline queue and the notifications to send.
// A task is due when its deadline lies in [ref, ref+Horizon], both ends
// inclusive, and urgent when deadline-ref <= Urgent. ref is now for timed
// deadlines and the start of now's day for date-only ones. Tasks without a
// deadline never appear. Zone-less deadlines are read in now's location.
// Whole-day spans are calendar days, so a DST change does not move the bounds.
func Recompute(tasks []*domain.Task, now time.Time, w Window) Result {
	var res Result
	for _, t := range tasks {
		if !t.HasDeadline() {
			continue
		}
		d, err := domain.ParseDeadline(t.Deadline, now.Location())
		if err != nil {
			res.Skipped = append(res.Skipped, t)
			continue
		}
		ref := d.Reference(now)
		if d.At.Before(ref) || d.At.After(advance(ref, w.Horizon)) {
			continue
		}
		res.Due = append(res.Due, t)
		if !d.At.After(advance(ref, w.Urgent)) {
			res.Notifications = append(res.Notifications, domain.Notification{
				TaskID:   t.ID,
				Name:     t.Name,
				Deadline: t.Deadline,
			})
		}
	}
	return res
}

// advance returns ref moved forward by span. Multiples of 24h advance by
// calendar days and keep the wall-clock time.
func advance(ref time.Time, span time.Duration) time.Time {
	const day = 24 * time.Hour
	if span > 0 && span%day == 0 {
		return ref.AddDate(0, 0, int(span/day))
	}
	return ref.Add(span)
}

// Scheduler owns the deadline queue and hands urgent tasks to the notifier.
// The queue is cleared and rebuilt on every Recompute, never diffed.
type Scheduler struct {
	notifier domain.Notifier
	clock    domain.Clock
	logger   domain.Logger
	queue    records.Queue[*domain.Task]
	last     Result
	window   Window
}

// New creates a new Scheduler.
func New(notifier domain.Notifier, clock domain.Clock, logger domain.Logger, window Window) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		clock:    clock,
		logger:   logger,
		window:   window,
	}
}

// Recompute rebuilds the queue from tasks and sends one notification per
// urgent task. Notifications are sent on every call while a task stays in
// the urgent window. Send failures are logged and otherwise ignored.
func (s *Scheduler) Recompute(tasks []*domain.Task) Result {
	res := Recompute(tasks, s.clock.Now(), s.window)
	s.last = res

	s.queue.Clear()
	for _, t := range res.Due {
		s.queue.Enqueue(t)
	}

	if s.logger != nil {
		for _, t := range res.Skipped {
			s.logger.Warn("deadline", fmt.Sprintf("task #%d: unparseable deadline %q", t.ID, t.Deadline))
		}
	}

	if s.notifier == nil {
		return res
	}
	for _, n := range res.Notifications {
		if err := s.notifier.Send(n); err != nil {
			if s.logger != nil {
				s.logger.Error("notify", fmt.Sprintf("task #%d: %v", n.TaskID, err))
			}
			continue
		}
		if s.logger != nil {
			s.logger.Debug("notify", fmt.Sprintf("task #%d: reminder sent", n.TaskID))
		}
	}

	return res
}

// Queue returns the current queue contents, front first.
func (s *Scheduler) Queue() []*domain.Task {
	return s.queue.Items()
}

// Last returns the result of the most recent Recompute.
func (s *Scheduler) Last() Result {
	return s.last
}

// Window returns the configured window.
func (s *Scheduler) Window() Window {
	return s.window
}
