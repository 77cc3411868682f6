package domain

import "strings"

// Status represents the lifecycle state of a task.
// Transitions are unrestricted; reaching a finished status removes the task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not started
	StatusInProgress Status = "in_progress" // Being worked on
	StatusDone       Status = "done"        // Work done (finished)
	StatusCompleted  Status = "completed"   // Completed (finished)
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusDone,
		StatusCompleted,
	}
}

// IsFinished returns true if the status triggers pruning.
// Done and Completed are named differently but behave the same.
func (s Status) IsFinished() bool {
	return s == StatusDone || s == StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus parses a status from user input.
// Accepts the stored value ("in_progress") and the display form ("In Progress").
func ParseStatus(v string) (Status, error) {
	for _, s := range AllStatuses() {
		if v == string(s) || strings.EqualFold(v, s.Display()) {
			return s, nil
		}
	}
	return "", ErrInvalidStatus
}
