package store

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/passtools/passdir/pkg/pathutil"
)

// Entry is one node of the store tree: either a *Dir or a *File. An
// Entry is an immutable snapshot taken at listing or retrieval time;
// Verify re-checks it against the live filesystem.
type Entry interface {
	// Path returns the entry's absolute filesystem path. Entry identity,
	// including EntrySet membership, is defined by this path alone.
	Path() string

	// Name returns the entry's logical name: its path relative to the
	// store root, slash-separated, with the secret suffix stripped for
	// files.
	Name() (string, error)

	// Verify re-checks that the entry still exists on the filesystem
	// with the expected shape.
	Verify() error

	sealed()
}

// EntrySet is a set of entries keyed by absolute path. Two entries with
// the same path are the same entry regardless of any cached children.
type EntrySet map[string]Entry

func (set EntrySet) add(e Entry) {
	set[e.Path()] = e
}

// Contains reports whether the set holds an entry for the given path.
func (set EntrySet) Contains(path string) bool {
	_, ok := set[path]
	return ok
}

// Paths returns the member paths in sorted order. Sibling ordering in
// the store itself is unspecified; sorting here is only for stable
// output.
func (set EntrySet) Paths() []string {
	paths := make([]string, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Dir is a directory inside the store together with a snapshot of its
// children.
type Dir struct {
	store    *Store
	path     string
	children EntrySet
}

func (d *Dir) sealed() {}

// Path returns the directory's absolute path.
func (d *Dir) Path() string {
	return d.path
}

// Children returns the child snapshot taken when the directory was
// listed.
func (d *Dir) Children() EntrySet {
	return d.children
}

// Name returns the directory's path relative to the store root.
func (d *Dir) Name() (string, error) {
	return d.store.relativeName(d.path)
}

// Verify fails unless the path still exists and is a directory.
func (d *Dir) Verify() error {
	info, err := os.Stat(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return invalidFormat(d.path, "directory does not exist")
		}
		return fmt.Errorf("failed to stat %s: %w", d.path, err)
	}
	if !info.IsDir() {
		return invalidFormat(d.path, "not a directory")
	}
	return nil
}

// File is one secret file inside the store.
type File struct {
	store *Store
	path  string
}

func (f *File) sealed() {}

// Path returns the file's absolute path.
func (f *File) Path() string {
	return f.path
}

// Name returns the file's logical name: the path relative to the store
// root with the secret suffix stripped. The suffix is checked here as
// well as in Verify because Name may be called on unverified entries.
func (f *File) Name() (string, error) {
	rel, err := f.store.relativeName(f.path)
	if err != nil {
		return "", err
	}

	name, ok := strings.CutSuffix(rel, SecretSuffix)
	if !ok {
		return "", invalidFormat(f.path, "file does not end with the "+SecretSuffix+" suffix")
	}
	return name, nil
}

// Verify fails unless the path still exists, is a regular file, and
// carries the secret suffix.
func (f *File) Verify() error {
	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return invalidFormat(f.path, "file does not exist")
		}
		return fmt.Errorf("failed to stat %s: %w", f.path, err)
	}
	if !info.Mode().IsRegular() {
		return invalidFormat(f.path, "not a regular file")
	}
	if !strings.HasSuffix(f.path, SecretSuffix) {
		return invalidFormat(f.path, "file does not end with the "+SecretSuffix+" suffix")
	}
	return nil
}

// relativeName translates an absolute entry path to its slash-separated
// form relative to the store root.
func (s *Store) relativeName(path string) (string, error) {
	rel, err := pathutil.Relative(s.root, path)
	if err != nil {
		return "", invalidFormat(path, "path is outside of the store root")
	}
	if !utf8.ValidString(rel) {
		return "", fmt.Errorf("%s: %w", path, ErrPathEncoding)
	}
	return rel, nil
}
