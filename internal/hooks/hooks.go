// Package hooks installs the Midpoint pre-commit hook into the git hooks
// directory.
package hooks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// HookName is the git hook mpdev manages.
const HookName = "pre-commit"

// InstallError indicates the hook could not be installed. No partial
// destination file is left behind when it is returned.
type InstallError struct {
	Reason string
	Err    error
}

func (e *InstallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("install hook: %s: %v", e.Reason, e.Err)
	}
	return "install hook: " + e.Reason
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Install copies the hook script at source (relative to root) into
// .git/hooks/pre-commit and marks it executable by the owner. The copy is
// all-or-nothing and reinstalling is idempotent. Returns the destination path.
func Install(root, source string) (string, error) {
	hooksDir := filepath.Join(root, ".git", "hooks")
	fi, err := os.Stat(hooksDir)
	if err != nil || !fi.IsDir() {
		return "", &InstallError{Reason: "hooks directory missing at " + hooksDir, Err: err}
	}

	data, err := os.ReadFile(filepath.Join(root, source))
	if err != nil {
		return "", &InstallError{Reason: "hook source missing at " + source, Err: err}
	}

	dest := filepath.Join(hooksDir, HookName)
	// Refuse anything that is not a plain file; never write through a symlink.
	if fi, err := os.Lstat(dest); err == nil && !fi.Mode().IsRegular() {
		return "", &InstallError{Reason: dest + " exists and is not a regular file"}
	}

	if err := atomic.WriteFile(dest, bytes.NewReader(data)); err != nil {
		return "", &InstallError{Reason: "write " + dest, Err: err}
	}
	if err := os.Chmod(dest, 0o755); err != nil {
		return "", &InstallError{Reason: "chmod " + dest, Err: err}
	}
	return dest, nil
}
