package store

import (
	"fmt"
	"os"
)

// Retrieve resolves a logical name to exactly one entry. A name held by
// both a file and a directory fails with ErrAmbiguousName; a name held
// by neither fails with ErrEntryNotFound. The returned entry is verified
// against the live filesystem before it is handed out.
func (s *Store) Retrieve(name string) (Entry, error) {
	dirPath, err := s.entryPath(name)
	if err != nil {
		return nil, err
	}
	filePath := dirPath + SecretSuffix

	dirExists, err := pathExists(dirPath)
	if err != nil {
		return nil, err
	}
	fileExists, err := pathExists(filePath)
	if err != nil {
		return nil, err
	}

	var entry Entry
	switch {
	case dirExists && fileExists:
		return nil, fmt.Errorf("%s: %w", name, ErrAmbiguousName)

	case !dirExists && !fileExists:
		return nil, fmt.Errorf("%s: %w", name, ErrEntryNotFound)

	case dirExists:
		children, err := s.listDir(dirPath)
		if err != nil {
			return nil, err
		}
		entry = &Dir{store: s, path: dirPath, children: children}

	default:
		entry = &File{store: s, path: filePath}
	}

	if err := entry.Verify(); err != nil {
		return nil, err
	}
	return entry, nil
}

func pathExists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}
