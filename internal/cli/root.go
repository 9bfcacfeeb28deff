package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/version"
)

// Execute runs the mpdev command tree and returns a process exit code.
// Propagated child exits are not reprinted; the child already wrote its
// own output.
func Execute() int {
	err := newRootCommand().Execute()
	var exitErr *exitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "mpdev: %v\n", err)
	}
	return ExitCode(err)
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mpdev",
		Short:         "Developer workflow commands for the Midpoint repository",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runUnknownTarget,
	}

	cmd.AddCommand(
		newRunCommand(),
		newTestCommand(),
		newTestMemoryCommand(),
		newInstallHooksCommand(),
		newCleanCommand(),
		newDoctorCommand(),
		newVersionCommand(),
	)

	return cmd
}

// runUnknownTarget handles a bare invocation or an unrecognized target name:
// print the help listing, perform nothing, fail distinctly.
func runUnknownTarget(cmd *cobra.Command, args []string) error {
	if err := cmd.Help(); err != nil {
		return err
	}
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	return &UnknownTargetError{Target: target}
}
