package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/midpointhq/mpdev/internal/config"
)

func newDoctorCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose mpdev prerequisites and repository layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show passing checks too")
	return cmd
}

type doctorCheck struct {
	Name string
	Fn   func(root string, cfg config.Config) error
}

func runDoctor(cmd *cobra.Command, verbose bool) error {
	root, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	checks := []doctorCheck{
		{Name: "python3 installed", Fn: requireOnPath("python3")},
		{Name: "pytest installed", Fn: requireOnPath("pytest")},
		{Name: "git installed", Fn: requireOnPath("git")},
		{Name: "test directory present", Fn: requireDir(cfg.Tests.Dir)},
		{Name: "hook source present", Fn: requireFile(cfg.Hooks.Source)},
		{Name: "git hooks directory present", Fn: requireDir(filepath.Join(".git", "hooks"))},
	}

	var failures []string
	for _, check := range checks {
		if err := check.Fn(root, cfg); err != nil {
			failures = append(failures, fmt.Sprintf("✗ %s: %v", check.Name, err))
			continue
		}
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", check.Name)
		}
	}

	if len(failures) > 0 {
		for _, failure := range failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		return fmt.Errorf("%d doctor checks failed", len(failures))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "healthy!")
	return nil
}

func requireOnPath(binary string) func(string, config.Config) error {
	return func(string, config.Config) error {
		if _, err := exec.LookPath(binary); err != nil {
			return fmt.Errorf("%s not found on PATH", binary)
		}
		return nil
	}
}

func requireDir(rel string) func(string, config.Config) error {
	return func(root string, _ config.Config) error {
		fi, err := os.Stat(filepath.Join(root, rel))
		if err != nil || !fi.IsDir() {
			return fmt.Errorf("%s is not a directory", rel)
		}
		return nil
	}
}

func requireFile(rel string) func(string, config.Config) error {
	return func(root string, _ config.Config) error {
		fi, err := os.Stat(filepath.Join(root, rel))
		if err != nil || !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a file", rel)
		}
		return nil
	}
}
