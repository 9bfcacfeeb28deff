package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/workspace"
)

func newCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated build and test artifacts",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	removed, err := workspace.Clean(root, workspace.DefaultPatterns, out, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	summary := fmt.Sprintf("removed %d artifacts", removed)
	if removed == 0 {
		summary = "nothing to remove"
	}
	if writerIsTerminal(out) {
		summary = colorSummary(summary)
	}
	fmt.Fprintln(out, summary)
	return nil
}

var colorSummary = color.New(color.FgGreen).SprintFunc()
