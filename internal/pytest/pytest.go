// Package pytest builds test-framework invocations for the Midpoint suite.
package pytest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Mode selects which slice of the suite a run covers.
type Mode int

const (
	// All runs every test file under the test directory.
	All Mode = iota
	// MemorySubset runs only files named test_memory_*.py.
	MemorySubset
)

const memoryPrefix = "test_memory_"

// ErrTestDirMissing indicates the test directory does not exist.
var ErrTestDirMissing = errors.New("test directory not found")

// SelectMemoryFiles walks dir and returns every file whose base name starts
// with test_memory_ and ends in .py, as sorted paths relative to root.
// Selection filters by file name only, never by path.
func SelectMemoryFiles(root, dir string) ([]string, error) {
	base := filepath.Join(root, dir)
	if !isDir(base) {
		return nil, ErrTestDirMissing
	}

	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, memoryPrefix) && strings.HasSuffix(name, ".py") {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Command constructs the pytest command line for the given mode. An empty
// memory selection hands pytest the literal glob so pytest reports the
// no-match outcome itself.
func Command(root, dir string, mode Mode) (string, error) {
	if mode == All {
		if !isDir(filepath.Join(root, dir)) {
			return "", ErrTestDirMissing
		}
		return "pytest " + dir, nil
	}

	files, err := SelectMemoryFiles(root, dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "pytest " + filepath.Join(dir, memoryPrefix+"*.py"), nil
	}
	return "pytest " + strings.Join(files, " "), nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}
