package domain

import (
	"path/filepath"
)

// SnapshotPath returns the path to the JSON snapshot document.
func SnapshotPath(dataDir string) string {
	return filepath.Join(dataDir, "taskpad.json")
}

// SlotsDir returns the directory used by the diskv backend.
func SlotsDir(dataDir string) string {
	return filepath.Join(dataDir, "slots")
}

// DatabasePath returns the path to the SQLite database.
func DatabasePath(dataDir string) string {
	return filepath.Join(dataDir, "taskpad.db")
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "taskpad.log")
}

// GlobalConfigDir returns the config directory under the given config home.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, DefaultDataDirName)
}

// DefaultDataDir returns the data directory under the given data home.
func DefaultDataDir(dataHome string) string {
	return filepath.Join(dataHome, DefaultDataDirName)
}
