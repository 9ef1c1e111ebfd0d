package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/passtools/passdir/pkg/gpg"
)

// EncryptionKeys resolves the recipient keys protecting this file. The
// nearest ancestor key manifest wins in full; manifests further up the
// tree are never merged in.
func (f *File) EncryptionKeys() ([]gpg.Key, error) {
	return f.store.recipientsFor(f.path)
}

// recipientsFor walks from the file's containing directory upward
// looking for a key manifest. The walk is an explicit loop so that a
// missing manifest is an ordinary loop exit at the filesystem root, not
// a recursion base case.
func (s *Store) recipientsFor(path string) ([]gpg.Key, error) {
	dir := filepath.Dir(path)

	for {
		manifest := filepath.Join(dir, KeyManifestName)
		info, err := os.Stat(manifest)
		switch {
		case err == nil && info.IsDir():
			return nil, invalidFormat(manifest, "expected a key manifest file, found a directory")
		case err == nil:
			return s.readManifest(manifest)
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to stat %s: %w", manifest, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, invalidFormat(path, "no ancestor key manifest found")
		}
		dir = parent
	}
}

// readManifest resolves each non-empty line of a key manifest to a key
// handle, preserving manifest order.
func (s *Store) readManifest(path string) ([]gpg.Key, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key manifest %s: %w", path, err)
	}
	defer file.Close()

	var keys []gpg.Key
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		identifier := strings.TrimSpace(scanner.Text())
		if identifier == "" {
			continue
		}

		key, err := s.engine.ResolveKey(identifier)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recipient %q from %s: %w", identifier, path, err)
		}
		keys = append(keys, key)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read key manifest %s: %w", path, err)
	}

	return keys, nil
}
