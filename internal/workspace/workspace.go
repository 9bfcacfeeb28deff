// Package workspace removes generated build and test artifacts from the
// Midpoint project tree.
package workspace

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// PatternKind distinguishes file patterns from directory patterns.
type PatternKind int

const (
	KindFile PatternKind = iota
	KindDir
)

// Pattern pairs a kind with a base-name glob.
type Pattern struct {
	Kind PatternKind
	Glob string
}

// DefaultPatterns is the fixed set of artifacts clean removes. Directory
// matches remove their whole subtree in one action.
var DefaultPatterns = []Pattern{
	{KindDir, "__pycache__"},
	{KindDir, ".pytest_cache"},
	{KindDir, ".mypy_cache"},
	{KindDir, "*.egg-info"},
	{KindDir, "build"},
	{KindDir, "dist"},
	{KindDir, "htmlcov"},
	{KindFile, "*.pyc"},
	{KindFile, "*.pyo"},
	{KindFile, ".coverage"},
}

// Clean sweeps root for entries matching patterns and removes them. Each
// removal is reported to report; removal failures go to warn and do not
// abort the sweep. Returns the number of entries removed.
func Clean(root string, patterns []Pattern, report, warn io.Writer) (int, error) {
	removed := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if warn != nil {
				fmt.Fprintf(warn, "warning: %s: %v\n", path, err)
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		// The VCS directory is never swept; install-hooks owns it.
		if d.IsDir() && d.Name() == ".git" {
			return fs.SkipDir
		}

		pat, ok := match(patterns, d)
		if !ok {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		var rmErr error
		if pat.Kind == KindDir {
			rmErr = os.RemoveAll(path)
		} else {
			rmErr = os.Remove(path)
		}
		if rmErr != nil {
			if warn != nil {
				fmt.Fprintf(warn, "warning: remove %s: %v\n", rel, rmErr)
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		removed++
		if report != nil {
			fmt.Fprintf(report, "removed %s\n", rel)
		}
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return removed, err
	}
	return removed, nil
}

func match(patterns []Pattern, d fs.DirEntry) (Pattern, bool) {
	for _, pat := range patterns {
		if (pat.Kind == KindDir) != d.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pat.Glob, d.Name()); ok {
			return pat, true
		}
	}
	return Pattern{}, false
}
