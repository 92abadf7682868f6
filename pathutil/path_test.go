package pathutil

import "testing"

func TestNewBasic(t *testing.T) {
	p := New("/a/b/file.ext")
	if got := p.String(); got != "/a/b/file.ext" {
		t.Fatalf("String() = %q", got)
	}
	if got := p.FileName(); got != "file.ext" {
		t.Fatalf("FileName() = %q", got)
	}
	if got := p.Stem(); got != "file" {
		t.Fatalf("Stem() = %q", got)
	}
	if got := p.Extension(); got != "ext" {
		t.Fatalf("Extension() = %q", got)
	}
}

func TestNewNormalizesBackslashesAndTrailingSlash(t *testing.T) {
	p := New(`a\b\file.ext\`)
	if got := p.String(); got != "a/b/file.ext" {
		t.Fatalf("String() = %q", got)
	}
	if got := p.FileName(); got != "file.ext" {
		t.Fatalf("FileName() = %q", got)
	}
}

func TestDotOnlyNames(t *testing.T) {
	cases := []string{".", "..", "..."}
	for _, name := range cases {
		p := New("/a/" + name)
		if p.Extension() != "" {
			t.Fatalf("New(%q).Extension() = %q, want empty", name, p.Extension())
		}
		if p.Stem() != name {
			t.Fatalf("New(%q).Stem() = %q, want %q", name, p.Stem(), name)
		}
	}
}

func TestTrailingDotName(t *testing.T) {
	p := New("/a/file.")
	if p.Extension() != "" {
		t.Fatalf("Extension() = %q, want empty", p.Extension())
	}
	if p.Stem() != "file" {
		t.Fatalf("Stem() = %q, want file", p.Stem())
	}
}

func TestExtensionOnlyName(t *testing.T) {
	p := New("/a/.ext")
	if p.Extension() != "ext" {
		t.Fatalf("Extension() = %q, want ext", p.Extension())
	}
	if p.Stem() != "" {
		t.Fatalf("Stem() = %q, want empty", p.Stem())
	}
}

func TestNoExtension(t *testing.T) {
	p := New("/a/b/file")
	if p.Extension() != "" {
		t.Fatalf("Extension() = %q, want empty", p.Extension())
	}
	if p.Stem() != "file" {
		t.Fatalf("Stem() = %q, want file", p.Stem())
	}
}

func TestNoDirectory(t *testing.T) {
	p := New("file.ext")
	if p.FileName() != "file.ext" {
		t.Fatalf("FileName() = %q, want file.ext", p.FileName())
	}
}
