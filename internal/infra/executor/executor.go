// Package executor provides command execution functionality.
package executor

import (
	"os"
	"os/exec"

	"github.com/runoshun/taskpad/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its combined output.
func (c *Client) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from config or trusted UseCase code
	return build(cmd).CombinedOutput()
}

// ExecuteInteractive runs a command with stdin/stdout/stderr connected to the terminal.
func (c *Client) ExecuteInteractive(cmd *domain.ExecCommand) error {
	execCmd := build(cmd)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	return execCmd.Run()
}

// Start launches the command detached from the caller's stdio and returns
// once the process has started. The process is reaped in the background.
func (c *Client) Start(cmd *domain.ExecCommand) error {
	execCmd := build(cmd)
	if err := execCmd.Start(); err != nil {
		return err
	}
	go func() { _ = execCmd.Wait() }()
	return nil
}

func build(cmd *domain.ExecCommand) *exec.Cmd {
	// #nosec G204 - cmd.Program and cmd.Args come from config or trusted UseCase code
	execCmd := exec.Command(cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	return execCmd
}
