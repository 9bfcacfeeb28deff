package shellutil

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// InvocationError indicates the shell could not be started at all, as opposed
// to the invoked command running and exiting non-zero.
type InvocationError struct {
	Command string
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invoke %q: %v", e.Command, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Run executes one command line via `sh -c` within dir, with the caller's
// stdio attached. The command line is handed to the shell verbatim.
// The invoked command's exit code is returned unchanged.
func Run(dir, command string) (int, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, &InvocationError{Command: command, Err: err}
	}
	return 0, nil
}
