package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/config"
	"github.com/midpointhq/mpdev/internal/shellutil"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Run the Midpoint program, forwarding arguments verbatim",
		// Everything after `run` belongs to the program, including flags.
		DisableFlagParsing: true,
		RunE:               runProgram,
	}
}

func runProgram(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	line := cfg.Program.Run
	if fwd := forwardedArgs(args); fwd != "" {
		line += " " + fwd
	}

	code, err := shellutil.Run(root, line)
	if err != nil {
		return err
	}
	return exitStatus(code)
}

// forwardedArgs joins the raw argument tokens back into the opaque string the
// shell receives. A leading `--` separator is stripped; nothing else is
// parsed, validated, or escaped.
func forwardedArgs(args []string) string {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	return strings.Join(args, " ")
}
