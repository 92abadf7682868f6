package filelister

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestNewRejectsMissingPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("New with missing path: want error")
	}
}

func TestNewRejectsNonDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := New(file)
	var invalidPath *InvalidPathError
	if err == nil {
		t.Fatal("New on a file: want *InvalidPathError")
	}
	if e, ok := err.(*InvalidPathError); ok {
		invalidPath = e
	} else {
		t.Fatalf("New error type = %T, want *InvalidPathError", err)
	}
	if invalidPath.Path != file {
		t.Fatalf("InvalidPathError.Path = %q, want %q", invalidPath.Path, file)
	}
}

func TestListFindsNestedFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "a.txt"), "a")
	mustWrite(t, filepath.Join(dir, "sub", "b.txt"), "b")
	if err := os.MkdirAll(filepath.Join(dir, "empty"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	lister, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := lister.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(got)

	want := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "b.txt"),
	}
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func mustWrite(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
