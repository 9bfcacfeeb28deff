package pytest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestSelectMemoryFilesFiltersByName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests", "test_memory_graph.py")
	writeFile(t, root, "tests", "test_memory_store.py")
	writeFile(t, root, "tests", "test_goal_cli.py")
	writeFile(t, root, "tests", "memory", "test_memory_nested.py")
	writeFile(t, root, "tests", "test_memory_fixture.txt")

	files, err := SelectMemoryFiles(root, "tests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if !strings.HasPrefix(base, "test_memory_") {
			t.Fatalf("selected file without memory prefix: %s", f)
		}
		if !strings.HasSuffix(base, ".py") {
			t.Fatalf("selected non-python file: %s", f)
		}
	}
}

func TestSelectMemoryFilesSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests", "test_memory_z.py")
	writeFile(t, root, "tests", "test_memory_a.py")

	files, err := SelectMemoryFiles(root, "tests")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "test_memory_a.py" {
		t.Fatalf("expected sorted selection, got %v", files)
	}
}

func TestSelectMemoryFilesMissingDir(t *testing.T) {
	if _, err := SelectMemoryFiles(t.TempDir(), "tests"); err != ErrTestDirMissing {
		t.Fatalf("expected ErrTestDirMissing, got %v", err)
	}
}

func TestCommandAllTargetsDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests", "test_goal_cli.py")

	cmd, err := Command(root, "tests", All)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "pytest tests" {
		t.Fatalf("unexpected command: %q", cmd)
	}
}

func TestCommandAllMissingDir(t *testing.T) {
	if _, err := Command(t.TempDir(), "tests", All); err != ErrTestDirMissing {
		t.Fatalf("expected ErrTestDirMissing, got %v", err)
	}
}

func TestCommandMemorySubsetListsFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests", "test_memory_graph.py")
	writeFile(t, root, "tests", "test_goal_cli.py")

	cmd, err := Command(root, "tests", MemorySubset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "pytest " + filepath.Join("tests", "test_memory_graph.py")
	if cmd != want {
		t.Fatalf("expected %q, got %q", want, cmd)
	}
}

func TestCommandMemorySubsetEmptySelectionUsesGlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "tests", "test_goal_cli.py")

	cmd, err := Command(root, "tests", MemorySubset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "pytest " + filepath.Join("tests", "test_memory_*.py")
	if cmd != want {
		t.Fatalf("expected %q, got %q", want, cmd)
	}
}
