package executor

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("executes simple echo command", func(t *testing.T) {
		cmd := domain.NewCommand("echo", []string{"hello"}, "")
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(output))
	})

	t.Run("executes command in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		cmd := domain.NewCommand("pwd", nil, dir)
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(string(output)), filepath.Base(dir))
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		cmd := domain.NewCommand("nonexistent-command-xyz", nil, "")
		_, err := client.Execute(cmd)
		require.Error(t, err)
	})

	t.Run("captures stderr in output", func(t *testing.T) {
		cmd := domain.NewCommand("sh", []string{"-c", "echo error >&2"}, "")
		output, err := client.Execute(cmd)
		require.NoError(t, err)
		assert.Equal(t, "error\n", string(output))
	})
}

func TestClient_Start(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("returns before the process exits", func(t *testing.T) {
		marker := filepath.Join(t.TempDir(), "done")
		cmd := domain.NewCommand("sh", []string{"-c", "sleep 0.2 && touch " + marker}, "")

		start := time.Now()
		require.NoError(t, client.Start(cmd))
		assert.Less(t, time.Since(start), 200*time.Millisecond)

		assert.Eventually(t, func() bool {
			_, err := os.Stat(marker)
			return err == nil
		}, 5*time.Second, 20*time.Millisecond)
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		cmd := domain.NewCommand("nonexistent-command-xyz", nil, "")
		require.Error(t, client.Start(cmd))
	})
}
