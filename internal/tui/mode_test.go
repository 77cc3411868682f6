package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeInputName, "input_name"},
		{ModeInputDeadline, "input_deadline"},
		{ModeInputTitle, "input_title"},
		{ModeInputContent, "input_content"},
		{ModeConfirm, "confirm"},
		{ModeHelp, "help"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeNormal, false},
		{ModeInputName, true},
		{ModeInputDeadline, true},
		{ModeInputTitle, true},
		{ModeInputContent, true},
		{ModeConfirm, false},
		{ModeHelp, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.IsInputMode())
		})
	}
}

func TestConfirmAction_String(t *testing.T) {
	assert.Equal(t, "", ConfirmNone.String())
	assert.Equal(t, "delete task", ConfirmDeleteTask.String())
	assert.Equal(t, "delete note", ConfirmDeleteNote.String())
	assert.Equal(t, "finish task", ConfirmFinishTask.String())
}

func TestKeyMap_NormalModeKeysDoNotOverlap(t *testing.T) {
	k := DefaultKeyMap()
	bindings := map[string]key.Binding{
		"up": k.Up, "down": k.Down, "switch": k.SwitchPane, "new": k.New,
		"deadline": k.Deadline, "start": k.Start, "pending": k.Pending,
		"finish": k.Finish, "delete": k.Delete, "refresh": k.Refresh,
		"help": k.Help, "quit": k.Quit,
	}

	seen := map[string]string{}
	for name, b := range bindings {
		for _, kk := range b.Keys() {
			if other, ok := seen[kk]; ok {
				t.Errorf("key %q bound to both %s and %s", kk, other, name)
			}
			seen[kk] = name
		}
	}
}

func TestKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()

	assert.Contains(t, k.ShortHelp(), k.Quit)
	assert.Contains(t, k.ShortHelp(), k.Help)

	var total int
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 12, total)
}
