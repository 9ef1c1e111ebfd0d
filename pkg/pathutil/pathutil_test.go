package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"~":                home,
		"~/store":          filepath.Join(home, "store"),
		"~/store/sub":      filepath.Join(home, "store", "sub"),
		"/absolute/path":   "/absolute/path",
		"relative/path":    "relative/path",
		"~user/not-a-home": "~user/not-a-home",
	}
	for input, want := range cases {
		got, err := ExpandHome(input)
		if err != nil {
			t.Fatalf("Expected no error for %q, got: %v", input, err)
		}
		if got != want {
			t.Errorf("ExpandHome(%q): expected %q, got: %q", input, want, got)
		}
	}
}

func TestCanonicalizeResolvesSymlinks(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	if err := os.Mkdir(real, 0700); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	got, err := Canonicalize(link)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	want, err := filepath.EvalSymlinks(real)
	if err != nil {
		t.Fatalf("Failed to resolve fixture path: %v", err)
	}
	if got != want {
		t.Errorf("Expected %q, got: %q", want, got)
	}
}

func TestCanonicalizeMissingPath(t *testing.T) {
	_, err := Canonicalize(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected os.ErrNotExist, got: %v", err)
	}
}

func TestRelative(t *testing.T) {
	root := filepath.FromSlash("/srv/store")

	got, err := Relative(root, filepath.FromSlash("/srv/store/folder/secret-a.gpg"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "folder/secret-a.gpg" {
		t.Errorf("Expected folder/secret-a.gpg, got: %q", got)
	}

	got, err = Relative(root, root)
	if err != nil {
		t.Fatalf("Expected no error for the root itself, got: %v", err)
	}
	if got != "." {
		t.Errorf("Expected \".\", got: %q", got)
	}
}

func TestRelativeRejectsOutsideTargets(t *testing.T) {
	root := filepath.FromSlash("/srv/store")

	for _, target := range []string{
		filepath.FromSlash("/srv"),
		filepath.FromSlash("/srv/other/secret-a.gpg"),
		filepath.FromSlash("/etc/passwd"),
	} {
		if _, err := Relative(root, target); err == nil {
			t.Errorf("Expected %q to be rejected", target)
		}
	}
}
