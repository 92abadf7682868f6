// Package pathutil decomposes filesystem paths into their component parts.
//
// It normalizes backslashes to forward slashes and strips a single
// trailing slash before splitting the result into file name, stem, and
// extension, matching the edge-case semantics of dot-only file names
// (".", "..", "...") and extension-only names (".ext") used throughout
// the file-backed source template.
package pathutil

import "strings"

// Path is a decomposed filesystem path. The zero value is not useful;
// construct one with New.
type Path struct {
	str       string
	fileName  string
	stem      string
	extension string
}

// New decomposes path into its components.
func New(path string) Path {
	normalized := stripTrailingSlash(toForwardSlash(path))
	fileName := normalized[fileNameStart(normalized):]

	p := Path{
		str:      normalized,
		fileName: fileName,
	}

	if start, ok := extensionStart(fileName); ok {
		p.extension = fileName[start:]
		p.stem = fileName[:start-1]
	} else {
		p.stem = fileName
	}

	return p
}

// String returns the normalized full path.
func (p Path) String() string {
	return p.str
}

// FileName returns the last path component.
func (p Path) FileName() string {
	return p.fileName
}

// Stem returns the file name without its extension.
func (p Path) Stem() string {
	return p.stem
}

// Extension returns the file name's extension, without the leading dot.
// Empty if the file name has no extension.
func (p Path) Extension() string {
	return p.extension
}

func toForwardSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

func stripTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path[:len(path)-1]
	}
	return path
}

func fileNameStart(path string) int {
	if idx := strings.LastIndexByte(path, '/'); idx != -1 {
		return idx + 1
	}
	return 0
}

// extensionStart returns the index just past the last dot in fileName,
// and false if fileName has no extension: either it contains no dot at
// all, or it consists entirely of dots (".", "..", "...").
func extensionStart(fileName string) (int, bool) {
	if strings.Trim(fileName, ".") == "" {
		return 0, false
	}

	idx := strings.LastIndexByte(fileName, '.')
	if idx == -1 {
		return 0, false
	}
	return idx + 1, true
}
