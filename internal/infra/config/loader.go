// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskpad/internal/domain"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "TASKPAD_CONFIG"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path    string // Path to config.toml
	dataDir string // Overrides data_dir when set
}

// NewLoader creates a new Loader. An empty path selects DefaultConfigPath.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Loader{path: path}
}

// WithDataDir returns a copy of the loader whose results use dir as data_dir.
func (l *Loader) WithDataDir(dir string) *Loader {
	return &Loader{path: l.path, dataDir: dir}
}

// Path returns the configuration file path.
func (l *Loader) Path() string {
	return l.path
}

// DefaultConfigPath returns $TASKPAD_CONFIG, or config.toml in the
// taskpad directory under the XDG config home.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return expand(p)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(domain.GlobalConfigDir(configHome), domain.DefaultConfigFileName)
}

// DefaultDataDir returns the taskpad directory under the XDG data home.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			return domain.DefaultDataDirName
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DefaultDataDir(dataHome)
}

// Load returns the configuration file merged over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			var raw map[string]any
			if err := toml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", l.path, err)
			}
			cfg.Warnings = applyRaw(cfg, raw)
		}
	}

	if l.dataDir != "" {
		cfg.DataDir = l.dataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}
	cfg.DataDir = expand(cfg.DataDir)

	return cfg, nil
}

// applyRaw overlays the keys present in raw onto cfg and returns warnings
// for unknown sections, unknown keys and values of the wrong type.
func applyRaw(cfg *domain.Config, raw map[string]any) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	str := func(section, key string, v any, dst *string) {
		if s, ok := v.(string); ok {
			*dst = s
			return
		}
		warn("invalid value for [%s] %s: expected string", section, key)
	}

	for section, value := range raw {
		if section == "data_dir" {
			if s, ok := value.(string); ok {
				cfg.DataDir = s
			} else {
				warn("invalid value for data_dir: expected string")
			}
			continue
		}

		m, ok := value.(map[string]any)
		if !ok {
			warn("unknown key: %s", section)
			continue
		}

		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "backend":
					str(section, k, v, &cfg.Store.Backend)
				default:
					warn("unknown key in [store]: %s", k)
				}
			}
		case "deadline":
			for k, v := range m {
				switch k {
				case "horizon":
					str(section, k, v, &cfg.Deadline.Horizon)
				case "urgent":
					str(section, k, v, &cfg.Deadline.Urgent)
				default:
					warn("unknown key in [deadline]: %s", k)
				}
			}
		case "notify":
			for k, v := range m {
				switch k {
				case "channel":
					str(section, k, v, &cfg.Notify.Channel)
				case "phone":
					str(section, k, v, &cfg.Notify.Phone)
				case "opener":
					str(section, k, v, &cfg.Notify.Opener)
				default:
					warn("unknown key in [notify]: %s", k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					str(section, k, v, &cfg.Log.Level)
				default:
					warn("unknown key in [log]: %s", k)
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "show_help":
					if b, ok := v.(bool); ok {
						cfg.TUI.ShowHelp = b
					} else {
						warn("invalid value for [tui] show_help: expected bool")
					}
				default:
					warn("unknown key in [tui]: %s", k)
				}
			}
		default:
			warn("unknown section: %s", section)
		}
	}

	sort.Strings(warnings)
	return warnings
}

// expand resolves a leading ~ to the home directory.
func expand(path string) string {
	p, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return p
}
