package domain

import (
	_ "embed"
	"fmt"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigTemplate returns the commented default configuration written by `config init`.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string       `toml:"-"`
	DataDir  string         `toml:"data_dir,omitempty"` // Directory holding the snapshot and logs
	Store    StoreConfig    `toml:"store"`
	Deadline DeadlineConfig `toml:"deadline"`
	Notify   NotifyConfig   `toml:"notify"`
	Log      LogConfig      `toml:"log"`
	TUI      TUIConfig      `toml:"tui"`
}

// StoreConfig holds snapshot storage settings from [store] section.
type StoreConfig struct {
	Backend string `toml:"backend,omitempty"` // "json" (default), "diskv" or "sqlite"
}

// DeadlineConfig holds deadline window settings from [deadline] section.
type DeadlineConfig struct {
	Horizon string `toml:"horizon,omitempty"` // Queue window length (Go duration)
	Urgent  string `toml:"urgent,omitempty"`  // Notification window length (Go duration)
}

// NotifyConfig holds notification channel settings from [notify] section.
type NotifyConfig struct {
	Channel string `toml:"channel,omitempty"` // "log" (default), "whatsapp" or "none"
	Phone   string `toml:"phone,omitempty"`   // Recipient phone number for whatsapp
	Opener  string `toml:"opener,omitempty"`  // Program that opens the deep link
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// TUIConfig holds TUI settings from [tui] section.
type TUIConfig struct {
	ShowHelp bool `toml:"show_help"` // Show the key help footer
}

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultStoreBackend   = BackendJSON
	DefaultNotifyChannel  = ChannelLog
	DefaultOpener         = "xdg-open"
	DefaultHorizon        = 72 * time.Hour
	DefaultUrgent         = 24 * time.Hour
	DefaultDataDirName    = "taskpad"
	DefaultConfigFileName = "config.toml"
)

// Store backends.
const (
	BackendJSON   = "json"
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
)

// Notification channels.
const (
	ChannelLog      = "log"
	ChannelWhatsApp = "whatsapp"
	ChannelNone     = "none"
)

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: DefaultStoreBackend,
		},
		Deadline: DeadlineConfig{
			Horizon: "72h",
			Urgent:  "24h",
		},
		Notify: NotifyConfig{
			Channel: DefaultNotifyChannel,
			Opener:  DefaultOpener,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		TUI: TUIConfig{
			ShowHelp: true,
		},
	}
}

// Window returns the parsed deadline window lengths.
func (c DeadlineConfig) Window() (horizon, urgent time.Duration, err error) {
	horizon, err = parseDurationOr(c.Horizon, DefaultHorizon)
	if err != nil {
		return 0, 0, fmt.Errorf("deadline.horizon: %w", err)
	}
	urgent, err = parseDurationOr(c.Urgent, DefaultUrgent)
	if err != nil {
		return 0, 0, fmt.Errorf("deadline.urgent: %w", err)
	}
	return horizon, urgent, nil
}

func parseDurationOr(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", v)
	}
	return d, nil
}

// ConfigInfo holds information about a configuration file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content, empty if the file does not exist
	Exists  bool   // Whether the file exists
}
