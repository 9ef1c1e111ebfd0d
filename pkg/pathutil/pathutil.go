// Package pathutil provides the path translation helpers shared by the
// store packages: home-directory expansion, canonicalization of the
// store root, and absolute-to-relative translation against it.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" path component with the current
// user's home directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(os.PathSeparator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}
	return filepath.Join(homeDir, path[2:]), nil
}

// Canonicalize expands a leading "~", makes the path absolute, and
// resolves any symlinks. The path must exist for symlink resolution to
// succeed.
func Canonicalize(path string) (string, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", expanded, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// Relative returns the slash-separated path of target relative to root.
// It fails if target does not live under root.
func Relative(root, target string) (string, error) {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return "", fmt.Errorf("failed to make %s relative to %s: %w", target, root, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("%s is outside of %s", target, root)
	}
	return filepath.ToSlash(rel), nil
}
