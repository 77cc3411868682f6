// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/taskpad/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	path string // Path to config.toml
}

// NewManager creates a new Manager. An empty path selects DefaultConfigPath.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultConfigPath()
	}
	return &Manager{path: path}
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   m.path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// Init writes the default template. An existing file is kept unless force is set.
func (m *Manager) Init(force bool) error {
	if m.path == "" {
		return errors.New("config path not available")
	}

	if _, err := os.Stat(m.path); err == nil && !force {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return os.WriteFile(m.path, []byte(domain.ConfigTemplate()), 0o600)
}
