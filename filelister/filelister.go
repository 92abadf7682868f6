// Package filelister recursively enumerates the files beneath a
// directory, for use as the listing half of a file-backed resource
// source.
//
// Grounded on original_source/include/rex/filelister.hpp: the original
// hand-rolls a recursive directory walk over a third-party tinydir
// binding; the Go idiom for the same job is filepath.WalkDir, so this
// package is a thin, idiomatic wrapper rather than a line-for-line port.
package filelister

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// InvalidPathError reports that New was given a path that does not
// exist or is not a directory.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path %q is not a directory", e.Path)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Err
}

// FileLister lists every regular file beneath a fixed root directory.
type FileLister struct {
	root string
}

// New validates that root is a directory and returns a FileLister over
// it. Returns *InvalidPathError if root does not exist or is not a
// directory.
func New(root string) (*FileLister, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &InvalidPathError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidPathError{Path: root}
	}

	return &FileLister{root: root}, nil
}

// List returns the full paths of every regular file beneath the root
// directory, walked recursively. The order is the order filepath.WalkDir
// visits entries in (lexical per directory); callers that need a
// specific order should sort the result themselves.
func (l *FileLister) List() ([]string, error) {
	var result []string

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		result = append(result, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", l.root, err)
	}

	return result, nil
}
