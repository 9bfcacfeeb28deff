package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/config"
	"github.com/midpointhq/mpdev/internal/pytest"
	"github.com/midpointhq/mpdev/internal/shellutil"
)

func newTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the full test suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(pytest.All)
		},
	}
}

func newTestMemoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test-memory",
		Short: "Run only the memory subsystem tests (test_memory_*)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(pytest.MemorySubset)
		},
	}
}

func runTests(mode pytest.Mode) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	line, err := pytest.Command(root, cfg.Tests.Dir, mode)
	if err != nil {
		return err
	}

	code, err := shellutil.Run(root, line)
	if err != nil {
		return err
	}
	return exitStatus(code)
}
