package domain

import (
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	assert.Equal(t, ChannelLog, cfg.Notify.Channel)
	assert.Equal(t, DefaultOpener, cfg.Notify.Opener)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.True(t, cfg.TUI.ShowHelp)
	assert.Empty(t, cfg.DataDir)

	horizon, urgent, err := cfg.Deadline.Window()
	require.NoError(t, err)
	assert.Equal(t, DefaultHorizon, horizon)
	assert.Equal(t, DefaultUrgent, urgent)
}

func TestDeadlineConfig_Window(t *testing.T) {
	tests := []struct {
		name        string
		errContains string
		cfg         DeadlineConfig
		horizon     time.Duration
		urgent      time.Duration
	}{
		{
			name:    "empty falls back to defaults",
			cfg:     DeadlineConfig{},
			horizon: DefaultHorizon,
			urgent:  DefaultUrgent,
		},
		{
			name:    "custom values",
			cfg:     DeadlineConfig{Horizon: "168h", Urgent: "90m"},
			horizon: 168 * time.Hour,
			urgent:  90 * time.Minute,
		},
		{
			name:    "zero urgent disables reminders",
			cfg:     DeadlineConfig{Urgent: "0s"},
			horizon: DefaultHorizon,
		},
		{
			name:        "bad horizon",
			cfg:         DeadlineConfig{Horizon: "3 days"},
			errContains: "deadline.horizon:",
		},
		{
			name:        "negative urgent",
			cfg:         DeadlineConfig{Urgent: "-1h"},
			errContains: "deadline.urgent: negative duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			horizon, urgent, err := tt.cfg.Window()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.horizon, horizon)
			assert.Equal(t, tt.urgent, urgent)
		})
	}
}

func TestConfigTemplate_MatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, toml.Unmarshal([]byte(ConfigTemplate()), &cfg))

	want := NewDefaultConfig()
	assert.Equal(t, want.Store, cfg.Store)
	assert.Equal(t, want.Deadline, cfg.Deadline)
	assert.Equal(t, want.Notify, cfg.Notify)
	assert.Equal(t, want.Log, cfg.Log)
	assert.Equal(t, want.TUI, cfg.TUI)
}
