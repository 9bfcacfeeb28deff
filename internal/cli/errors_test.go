package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/midpointhq/mpdev/internal/hooks"
	"github.com/midpointhq/mpdev/internal/pytest"
	"github.com/midpointhq/mpdev/internal/shellutil"
)

func TestExitCodeDistinctPerFailureKind(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"unknown target", &UnknownTargetError{Target: "bogus"}, exitUnknownTarget},
		{"test dir missing", pytest.ErrTestDirMissing, exitTestDirMissing},
		{"wrapped test dir missing", fmt.Errorf("test: %w", pytest.ErrTestDirMissing), exitTestDirMissing},
		{"hook install", &hooks.InstallError{Reason: "hooks directory missing"}, exitHookInstall},
		{"invocation", &shellutil.InvocationError{Command: "true", Err: errors.New("fork failed")}, exitInvocation},
		{"generic", errors.New("boom"), exitGeneric},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Fatalf("%s: expected exit code %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestExitCodePropagatesChildStatusUnchanged(t *testing.T) {
	for _, code := range []int{1, 2, 5, 42, 127} {
		if got := ExitCode(exitStatus(code)); got != code {
			t.Fatalf("expected child exit %d to propagate, got %d", code, got)
		}
	}
	if err := exitStatus(0); err != nil {
		t.Fatalf("expected nil for exit 0, got %v", err)
	}
}
