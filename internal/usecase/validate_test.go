package usecase

import (
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		in      any
		wantErr error
		name    string
	}{
		{name: "valid task", in: NewTaskInput{Name: "a", Deadline: "2026-10-21T09:00"}},
		{name: "valid display status", in: SetTaskStatusInput{TaskID: 1, Status: "In Progress"}},
		{name: "missing name", in: NewTaskInput{}, wantErr: domain.ErrEmptyName},
		{name: "missing title", in: NewNoteInput{}, wantErr: domain.ErrEmptyTitle},
		{name: "bad status", in: SetTaskStatusInput{TaskID: 1, Status: "later"}, wantErr: domain.ErrInvalidStatus},
		{name: "bad deadline", in: SetTaskDeadlineInput{TaskID: 1, Deadline: "21/10/2026"}, wantErr: domain.ErrInvalidDeadline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateInput_NonPositiveID(t *testing.T) {
	err := validateInput(DeleteTaskInput{TaskID: -1})

	assert.EqualError(t, err, "invalid taskid: must be positive")
}
