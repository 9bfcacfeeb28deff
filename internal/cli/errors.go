package cli

import (
	"errors"
	"fmt"

	"github.com/midpointhq/mpdev/internal/hooks"
	"github.com/midpointhq/mpdev/internal/pytest"
	"github.com/midpointhq/mpdev/internal/shellutil"
)

// Exit codes for mpdev's own failure modes. Exit codes of the wrapped
// program or test framework propagate unchanged and are never remapped.
const (
	exitUnknownTarget  = 2
	exitTestDirMissing = 3
	exitHookInstall    = 4
	exitInvocation     = 126
	exitGeneric        = 1
)

// UnknownTargetError reports a target name outside the fixed set.
type UnknownTargetError struct {
	Target string
}

func (e *UnknownTargetError) Error() string {
	if e.Target == "" {
		return "no target specified"
	}
	return fmt.Sprintf("unknown target %q", e.Target)
}

// exitError carries a wrapped tool's non-zero exit code through the command
// tree without reinterpreting it. The tool already wrote its own output.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func exitStatus(code int) error {
	if code == 0 {
		return nil
	}
	return &exitError{code: code}
}

// ExitCode maps an error from the command tree to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	var unknownErr *UnknownTargetError
	if errors.As(err, &unknownErr) {
		return exitUnknownTarget
	}
	if errors.Is(err, pytest.ErrTestDirMissing) {
		return exitTestDirMissing
	}
	var installErr *hooks.InstallError
	if errors.As(err, &installErr) {
		return exitHookInstall
	}
	var invErr *shellutil.InvocationError
	if errors.As(err, &invErr) {
		return exitInvocation
	}
	return exitGeneric
}
