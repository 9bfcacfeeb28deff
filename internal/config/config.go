package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the per-checkout configuration file, read from the project root.
const FileName = ".mpdev.toml"

// Config captures the user editable settings stored in .mpdev.toml. Every
// field defaults to the fixed Midpoint repository layout; a missing file
// means the defaults apply.
type Config struct {
	Program ProgramBlock `toml:"program"`
	Tests   TestsBlock   `toml:"tests"`
	Hooks   HooksBlock   `toml:"hooks"`
}

// ProgramBlock describes how the Midpoint entry point is invoked.
type ProgramBlock struct {
	Run string `toml:"run"`
}

// TestsBlock locates the test suite.
type TestsBlock struct {
	Dir string `toml:"dir"`
}

// HooksBlock locates the pre-commit hook script to install.
type HooksBlock struct {
	Source string `toml:"source"`
}

var (
	// ErrMissingProgramRun indicates the config cleared the program command.
	ErrMissingProgramRun = errors.New("config.program.run must be set")
	// ErrMissingTestsDir indicates the config cleared the test directory.
	ErrMissingTestsDir = errors.New("config.tests.dir must be set")
	// ErrMissingHookSource indicates the config cleared the hook source path.
	ErrMissingHookSource = errors.New("config.hooks.source must be set")
)

// Default returns the baseline configuration matching the Midpoint layout.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Program.Run) == "" {
		c.Program.Run = "python3 -m midpoint"
	}
	if strings.TrimSpace(c.Tests.Dir) == "" {
		c.Tests.Dir = "tests"
	}
	if strings.TrimSpace(c.Hooks.Source) == "" {
		c.Hooks.Source = filepath.Join("hooks", "pre-commit")
	}
}

// Validate ensures the configuration can guide mpdev's behavior.
func (c Config) Validate() error {
	if c.Program.Run == "" {
		return ErrMissingProgramRun
	}
	if c.Tests.Dir == "" {
		return ErrMissingTestsDir
	}
	if c.Hooks.Source == "" {
		return ErrMissingHookSource
	}
	return nil
}

// Load reads configuration from the project root. Missing files return the
// default config.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes configuration to the project root.
func Save(root string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(root, FileName), data, 0o644)
}
