package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestStore builds the fixture layout used throughout the package
// tests:
//
//	.gpg-id                       -> alice
//	secret-a.gpg                  "foobar123\n"
//	secret-b.gpg
//	notes.txt                     (not a secret, ignored)
//	.git/config                   (version control, ignored)
//	folder/subsecret-a.gpg        "foobar123\n"
//	folder/subsecret-b.gpg
//	folder/subfolder/generated-a.gpg
//	folder2/subsecret-a.gpg
func newTestStore(t *testing.T) (*Store, *fakeEngine) {
	t.Helper()

	root := t.TempDir()
	engine := newFakeEngine("alice", "bob")

	writeTestFile(t, filepath.Join(root, KeyManifestName), "alice\n")
	writeSecret(t, root, "secret-a.gpg", "foobar123\n")
	writeSecret(t, root, "secret-b.gpg", "hunter2\n")
	writeTestFile(t, filepath.Join(root, "notes.txt"), "not a secret\n")
	writeTestFile(t, filepath.Join(root, ".git", "config"), "[core]\n")
	writeSecret(t, root, filepath.Join("folder", "subsecret-a.gpg"), "foobar123\n")
	writeSecret(t, root, filepath.Join("folder", "subsecret-b.gpg"), "swordfish\n")
	writeSecret(t, root, filepath.Join("folder", "subfolder", "generated-a.gpg"), "generated\n")
	writeSecret(t, root, filepath.Join("folder2", "subsecret-a.gpg"), "tail\n")

	store, err := Open(root, engine)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	return store, engine
}

// writeSecret writes a fixture secret in the fake engine's ciphertext
// format.
func writeSecret(t *testing.T, root, name, plaintext string) {
	t.Helper()
	writeTestFile(t, filepath.Join(root, name), fakeCipherHeader+plaintext)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create fixture file: %v", err)
	}
}

func TestOpenMissingRoot(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist"), newFakeEngine())
	if !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("Expected ErrStoreNotFound, got: %v", err)
	}
}

func TestOpenRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file-root")
	writeTestFile(t, root, "not a directory")

	_, err := Open(root, newFakeEngine())
	if !errors.Is(err, ErrStoreNotFound) {
		t.Fatalf("Expected ErrStoreNotFound, got: %v", err)
	}
}

func TestOpenCanonicalizesRoot(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real-store")
	if err := os.Mkdir(target, 0700); err != nil {
		t.Fatalf("Failed to create store directory: %v", err)
	}
	link := filepath.Join(dir, "store-link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	store, err := Open(link, newFakeEngine())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if strings.Contains(store.Root(), "store-link") {
		t.Errorf("Expected symlink to be resolved, got root %s", store.Root())
	}
}

func TestDefaultRootFromEnvironment(t *testing.T) {
	t.Setenv("PASSWORD_STORE_DIR", "/srv/pass-store")

	root, err := DefaultRoot()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if root != "/srv/pass-store" {
		t.Errorf("Expected /srv/pass-store, got: %s", root)
	}
}

func TestDefaultRootFallsBackToHome(t *testing.T) {
	t.Setenv("PASSWORD_STORE_DIR", "")
	t.Setenv("HOME", "/home/testuser")

	root, err := DefaultRoot()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if root != "/home/testuser/.password-store" {
		t.Errorf("Expected /home/testuser/.password-store, got: %s", root)
	}
}
