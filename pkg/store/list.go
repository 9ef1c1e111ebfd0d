package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List builds the full entry tree of the store. Regular files survive
// only with the secret suffix; directories are always recursed into,
// except version-control metadata. The first malformed child aborts the
// whole listing, so a returned set never holds partial results.
func (s *Store) List() (EntrySet, error) {
	return s.listDir(s.root)
}

func (s *Store) listDir(dir string) (EntrySet, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) && dir == s.root {
			return nil, fmt.Errorf("%s: %w", dir, ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	set := make(EntrySet, len(children))
	for _, child := range children {
		path := filepath.Join(dir, child.Name())

		switch {
		case child.Type().IsRegular():
			if !strings.HasSuffix(child.Name(), SecretSuffix) {
				continue
			}
			set.add(&File{store: s, path: path})

		case child.IsDir():
			if child.Name() == versionControlDir {
				continue
			}
			grandchildren, err := s.listDir(path)
			if err != nil {
				return nil, err
			}
			set.add(&Dir{store: s, path: path, children: grandchildren})

		default:
			// Dangling symlinks, sockets, devices. A pass store can only
			// hold regular files and directories.
			return nil, invalidFormat(path, "neither a regular file nor a directory")
		}
	}
	return set, nil
}
