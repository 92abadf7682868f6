package filesource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/therocode/rexprovider/filelister"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func loadRaw(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func TestNamingNoExt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "file.ext"), "x")

	src, err := New(dir, "", NoExt, loadRaw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ids, err := src.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != "file" {
		t.Fatalf("List() = %v, want [file]", ids)
	}
}

func TestNamingFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "file.ext"), "x")

	src, err := New(dir, "", FileName, loadRaw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ids, err := src.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != "file.ext" {
		t.Fatalf("List() = %v, want [file.ext]", ids)
	}
}

func TestNamingNoExtCollidesButPathDoesNot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "file.ext"), "x")
	writeFile(t, filepath.Join(dir, "b", "file.ext"), "y")

	if _, err := New(dir, "", NoExt, loadRaw); err == nil {
		t.Fatal("New with colliding stems: want *AmbiguousNameError")
	} else if _, ok := err.(*AmbiguousNameError); !ok {
		t.Fatalf("New error type = %T, want *AmbiguousNameError", err)
	}

	src, err := New(dir, "", Path, loadRaw)
	if err != nil {
		t.Fatalf("New with Path naming: %v", err)
	}
	ids, err := src.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("List() = %v, want 2 distinct ids", ids)
	}
}

func TestFilterPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.json"), "{}")
	writeFile(t, filepath.Join(dir, "skip.txt"), "x")

	src, err := New(dir, `\.json$`, FileName, loadRaw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ids, err := src.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 1 || ids[0] != "keep.json" {
		t.Fatalf("List() = %v, want [keep.json]", ids)
	}
}

func TestFilterPatternTooLong(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x")

	pattern := strings.Repeat("a", maxPatternLength+1)
	if _, err := New(dir, pattern, FileName, loadRaw); err == nil {
		t.Fatal("New with oversized pattern: want error")
	}
}

func TestLoadUnknownID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x")

	src, err := New(dir, "", FileName, loadRaw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := src.Load("nope.txt"); err == nil {
		t.Fatal("Load with unknown id: want error")
	}
}

func TestNewPropagatesInvalidPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), "", FileName, loadRaw)
	var invalidPath *filelister.InvalidPathError
	if err == nil {
		t.Fatal("New on missing root: want error")
	}
	if e, ok := err.(*filelister.InvalidPathError); ok {
		invalidPath = e
	} else {
		t.Fatalf("New error type = %T, want *filelister.InvalidPathError", err)
	}
	_ = invalidPath
}
