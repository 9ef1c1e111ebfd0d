package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileNameStripsSuffix(t *testing.T) {
	store, _ := newTestStore(t)

	cases := map[string]string{
		"secret-a.gpg":                     "secret-a",
		"folder/subsecret-a.gpg":           "folder/subsecret-a",
		"folder/subfolder/generated-a.gpg": "folder/subfolder/generated-a",
	}
	for rel, want := range cases {
		file := &File{store: store, path: filepath.Join(store.Root(), filepath.FromSlash(rel))}
		name, err := file.Name()
		if err != nil {
			t.Fatalf("Expected no error for %s, got: %v", rel, err)
		}
		if name != want {
			t.Errorf("Expected name %s, got: %s", want, name)
		}
	}
}

func TestDirName(t *testing.T) {
	store, _ := newTestStore(t)

	dir := &Dir{store: store, path: filepath.Join(store.Root(), "folder", "subfolder")}
	name, err := dir.Name()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if name != "folder/subfolder" {
		t.Errorf("Expected folder/subfolder, got: %s", name)
	}
}

func TestFileNameWithoutSuffix(t *testing.T) {
	store, _ := newTestStore(t)

	// Name may be called on unverified entries, so the suffix check must
	// hold on its own.
	file := &File{store: store, path: filepath.Join(store.Root(), "notes.txt")}
	_, err := file.Name()
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Expected ErrInvalidFormat, got: %v", err)
	}
}

func TestNameOutsideStoreRoot(t *testing.T) {
	store, _ := newTestStore(t)

	file := &File{store: store, path: "/elsewhere/secret-a.gpg"}
	if _, err := file.Name(); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Expected ErrInvalidFormat for file, got: %v", err)
	}

	dir := &Dir{store: store, path: "/elsewhere"}
	if _, err := dir.Name(); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("Expected ErrInvalidFormat for directory, got: %v", err)
	}
}

func TestVerify(t *testing.T) {
	store, _ := newTestStore(t)

	file := &File{store: store, path: filepath.Join(store.Root(), "secret-a.gpg")}
	if err := file.Verify(); err != nil {
		t.Errorf("Expected file to verify, got: %v", err)
	}

	dir := &Dir{store: store, path: filepath.Join(store.Root(), "folder")}
	if err := dir.Verify(); err != nil {
		t.Errorf("Expected directory to verify, got: %v", err)
	}

	missing := &File{store: store, path: filepath.Join(store.Root(), "gone.gpg")}
	if err := missing.Verify(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for missing file, got: %v", err)
	}

	// A directory posing as a file entry.
	posing := &File{store: store, path: filepath.Join(store.Root(), "folder")}
	if err := posing.Verify(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for directory-as-file, got: %v", err)
	}

	// A regular file without the secret suffix.
	plain := &File{store: store, path: filepath.Join(store.Root(), "notes.txt")}
	if err := plain.Verify(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat for non-secret file, got: %v", err)
	}
}

func TestEntrySetIdentityIsPathBased(t *testing.T) {
	store, _ := newTestStore(t)
	path := filepath.Join(store.Root(), "folder")

	set := make(EntrySet)
	set.add(&Dir{store: store, path: path, children: nil})
	// Same path, different cached child snapshot: still the same entry.
	set.add(&Dir{store: store, path: path, children: EntrySet{"x": &File{store: store, path: "x"}}})

	if len(set) != 1 {
		t.Errorf("Expected path-based identity to deduplicate, got %d entries", len(set))
	}
}
