package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of a date-only deadline.
const DateLayout = "2006-01-02"

// timedLayouts are the accepted date-time deadline layouts, in parse order.
var timedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Deadline is a parsed task deadline.
type Deadline struct {
	At       time.Time
	DateOnly bool // true for "2006-01-02" deadlines (midnight of that day)
}

// ParseDeadline parses a stored deadline string.
// Deadlines without an explicit zone are interpreted in loc.
func ParseDeadline(v string, loc *time.Location) (Deadline, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return Deadline{}, fmt.Errorf("%w: empty", ErrInvalidDeadline)
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, v, loc); err == nil {
		return Deadline{At: t, DateOnly: true}, nil
	}
	for _, layout := range timedLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return Deadline{At: t}, nil
		}
	}
	return Deadline{}, fmt.Errorf("%w: %q", ErrInvalidDeadline, v)
}

// Reference returns the instant the deadline is measured against.
// Date-only deadlines are compared with the start of now's day, so a deadline
// of today is still inside the window for the rest of the day.
func (d Deadline) Reference(now time.Time) time.Time {
	if !d.DateOnly {
		return now
	}
	n := now.In(d.At.Location())
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, d.At.Location())
}
