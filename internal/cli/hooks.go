package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/config"
	"github.com/midpointhq/mpdev/internal/hooks"
)

func newInstallHooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "install-hooks",
		Short: "Install the pre-commit hook into .git/hooks",
		Args:  cobra.NoArgs,
		RunE:  runInstallHooks,
	}
}

func runInstallHooks(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	dest, err := hooks.Install(root, cfg.Hooks.Source)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed %s hook at %s\n", hooks.HookName, dest)
	return nil
}
