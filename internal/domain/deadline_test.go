package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tests := []struct {
		want     time.Time
		name     string
		input    string
		dateOnly bool
		wantErr  bool
	}{
		{
			name:     "date only",
			input:    "2026-10-21",
			want:     time.Date(2026, 10, 21, 0, 0, 0, 0, loc),
			dateOnly: true,
		},
		{
			name:  "date and minutes",
			input: "2026-10-21T14:30",
			want:  time.Date(2026, 10, 21, 14, 30, 0, 0, loc),
		},
		{
			name:  "date and seconds",
			input: "2026-10-21T14:30:15",
			want:  time.Date(2026, 10, 21, 14, 30, 15, 0, loc),
		},
		{
			name:  "space separator",
			input: "2026-10-21 14:30",
			want:  time.Date(2026, 10, 21, 14, 30, 0, 0, loc),
		},
		{
			name:  "explicit zone wins",
			input: "2026-10-21T14:30:00Z",
			want:  time.Date(2026, 10, 21, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "surrounding space",
			input: "  2026-10-21T08:00 ",
			want:  time.Date(2026, 10, 21, 8, 0, 0, 0, loc),
		},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "next friday", wantErr: true},
		{name: "impossible date", input: "2026-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input, loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDeadline)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.At), "got %v, want %v", got.At, tt.want)
			assert.Equal(t, tt.dateOnly, got.DateOnly)
		})
	}
}

func TestParseDeadline_NilLocationUsesLocal(t *testing.T) {
	got, err := ParseDeadline("2026-10-21T09:00", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.At.Location())
}

func TestDeadline_Reference(t *testing.T) {
	now := time.Date(2026, 10, 19, 18, 45, 0, 0, time.UTC)

	timed, err := ParseDeadline("2026-10-20T09:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, now, timed.Reference(now))

	dateOnly, err := ParseDeadline("2026-10-19", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), dateOnly.Reference(now))
	// A deadline of today is not overdue for the rest of the day
	assert.False(t, dateOnly.At.Before(dateOnly.Reference(now)))
}
