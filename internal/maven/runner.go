// Where: internal/maven/runner.go
// What: Process execution for the mvn binary.
// Why: Keep os/exec behind an interface so invocations are testable.
package maven

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner defines the interface for executing external commands.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner implements CommandRunner using os/exec with inherited stdio.
type ExecRunner struct{}

// Run executes a command in dir with the caller's stdin, stdout, and stderr.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// StatusError carries the exit status of a finished mvn process.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mvn exited with status %d", e.Code)
}

// ExitStatus maps an error returned by Invoker.Generate to a process exit
// code: 0 for nil, the child's own status for a StatusError, 1 otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 1
}
