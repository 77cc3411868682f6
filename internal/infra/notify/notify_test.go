package notify

import (
	"errors"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startRecorder struct {
	err     error
	started []*domain.ExecCommand
}

func (s *startRecorder) Execute(*domain.ExecCommand) ([]byte, error) { return nil, nil }
func (s *startRecorder) ExecuteInteractive(*domain.ExecCommand) error  { return nil }
func (s *startRecorder) Start(cmd *domain.ExecCommand) error {
	if s.err != nil {
		return s.err
	}
	s.started = append(s.started, cmd)
	return nil
}

var essay = domain.Notification{TaskID: 1, Name: "Essay", Deadline: "2026-10-20"}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.NotifyConfig
		want    any
		wantErr error
	}{
		{"default is log", domain.NotifyConfig{}, &LogNotifier{}, nil},
		{"log", domain.NotifyConfig{Channel: "log"}, &LogNotifier{}, nil},
		{"none", domain.NotifyConfig{Channel: "none"}, Discard{}, nil},
		{"whatsapp", domain.NotifyConfig{Channel: "whatsapp", Phone: "+62 877"}, &WhatsApp{}, nil},
		{"unknown", domain.NotifyConfig{Channel: "pager"}, nil, domain.ErrUnknownChannel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg, &startRecorder{}, nil)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestNewWhatsApp_RequiresPhone(t *testing.T) {
	_, err := NewWhatsApp(" + ", "", &startRecorder{})
	assert.Error(t, err)
}

func TestWhatsApp_Link(t *testing.T) {
	w, err := NewWhatsApp("+62 877-7069", "", &startRecorder{})
	require.NoError(t, err)

	link := w.Link(essay)

	assert.Equal(t,
		"https://wa.me/628777069?text=Reminder%3A%20task%20%22Essay%22%20is%20due%20at%202026-10-20.",
		link)
}

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a b", want: "a%20b"},
		{in: "1+1", want: "1%2B1"},
		{in: "it's (done)!*", want: "it's%20(done)!*"},
		{in: "a&b=c/d?", want: "a%26b%3Dc%2Fd%3F"},
		{in: "-_.~", want: "-_.~"},
		{in: "ü", want: "%C3%BC"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeComponent(tt.in))
		})
	}
}

func TestWhatsApp_SendStartsOpener(t *testing.T) {
	exec := &startRecorder{}
	w, err := NewWhatsApp("62877", "open", exec)
	require.NoError(t, err)

	require.NoError(t, w.Send(essay))

	require.Len(t, exec.started, 1)
	assert.Equal(t, "open", exec.started[0].Program)
	assert.Equal(t, []string{w.Link(essay)}, exec.started[0].Args)
}

func TestWhatsApp_SendDefaultOpener(t *testing.T) {
	exec := &startRecorder{}
	w, err := NewWhatsApp("62877", "", exec)
	require.NoError(t, err)

	require.NoError(t, w.Send(essay))

	assert.Equal(t, domain.DefaultOpener, exec.started[0].Program)
}

func TestWhatsApp_SendError(t *testing.T) {
	boom := errors.New("no display")
	w, err := NewWhatsApp("62877", "", &startRecorder{err: boom})
	require.NoError(t, err)

	assert.ErrorIs(t, w.Send(essay), boom)
}

func TestLogNotifier_Send(t *testing.T) {
	logger := &testutil.RecordingLogger{}
	n := &LogNotifier{logger: logger}

	require.NoError(t, n.Send(essay))

	require.Len(t, logger.Entries, 1)
	assert.Equal(t, testutil.LogEntry{
		Level:    "INFO",
		Category: "notify",
		Msg:      `Reminder: task "Essay" is due at 2026-10-20.`,
	}, logger.Entries[0])
}

func TestDiscard_Send(t *testing.T) {
	assert.NoError(t, Discard{}.Send(essay))
}
