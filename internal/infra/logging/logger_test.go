package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func readLog(t *testing.T, dataDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_Info(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("planner", "test message")

	content := readLog(t, dataDir)
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "[planner]")
	assert.Contains(t, content, "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("persist", "debug message")
	logger.Info("persist", "info message")
	logger.Warn("persist", "warn message")
	logger.Error("persist", "error message")

	content := readLog(t, dataDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or create files
	logger.Info("x", "test message")
	logger.Error("x", "error message")

	assert.Empty(t, logger.Path())
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2026, 10, 19, 9, 32, 51, 0, time.UTC)

	got := formatLog(ts, slog.LevelWarn, "notify", `task #3: "Essay"`)

	assert.Equal(t, "[2026-10-19 09:32:51] [WARN] [notify] task #3: \"Essay\"\n", got)
}

func TestLogger_AppendsLines(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info("usecase", "first")
	logger.Info("usecase", "second")
	require.NoError(t, logger.Close())

	// Reopening appends to the same file.
	logger = New(dataDir, slog.LevelInfo)
	logger.Info("usecase", "third")
	require.NoError(t, logger.Close())

	lines := strings.Split(strings.TrimSpace(readLog(t, dataDir)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "[usecase] third"))
}

func TestLogger_CreateLogsDir(t *testing.T) {
	dataDir := t.TempDir()
	logsDir := filepath.Join(dataDir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("app", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
