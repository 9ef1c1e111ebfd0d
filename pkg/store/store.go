package store

import (
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/passtools/passdir/internal/logging"
	"github.com/passtools/passdir/pkg/gpg"
	"github.com/passtools/passdir/pkg/pathutil"
)

const (
	// SecretSuffix is the filename suffix marking a regular file as a
	// store entry.
	SecretSuffix = ".gpg"

	// KeyManifestName is the per-directory file listing recipient key
	// identifiers, one per line, inherited by all secrets below it.
	KeyManifestName = ".gpg-id"

	// versionControlDir is skipped while listing.
	versionControlDir = ".git"

	// envStoreDir overrides the default store root, like pass itself.
	envStoreDir = "PASSWORD_STORE_DIR"

	defaultStoreDir = "~/.password-store"
)

// Store is a handle to one password store rooted at a canonicalized
// directory path. The root is resolved once at Open time and treated as
// read-only for the lifetime of the Store.
type Store struct {
	root   string
	engine gpg.Engine
	log    logger.Logger
}

// Option configures a Store beyond its required root and engine.
type Option func(*Store)

// WithLogger sets the diagnostic logger used for failures that cannot
// be returned to a caller, such as a failed write-back during Close.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// DefaultRoot returns the store root designated by PASSWORD_STORE_DIR,
// falling back to ~/.password-store. The returned path is expanded but
// not checked for existence.
func DefaultRoot() (string, error) {
	if dir := os.Getenv(envStoreDir); dir != "" {
		return pathutil.ExpandHome(dir)
	}
	return pathutil.ExpandHome(defaultStoreDir)
}

// Open canonicalizes root and returns a Store over it. It fails with
// ErrStoreNotFound if the root does not exist or is not a directory.
func Open(root string, engine gpg.Engine, opts ...Option) (*Store, error) {
	canonical, err := pathutil.Canonicalize(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", root, ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to canonicalize store root %s: %w", root, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", canonical, ErrStoreNotFound)
		}
		return nil, fmt.Errorf("failed to stat store root %s: %w", canonical, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory: %w", canonical, ErrStoreNotFound)
	}

	s := &Store{
		root:   canonical,
		engine: engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Root returns the canonicalized store root.
func (s *Store) Root() string {
	return s.root
}

// entryPath maps a logical name onto a path below the store root. Names
// that escape the root resolve to nothing.
func (s *Store) entryPath(name string) (string, error) {
	joined := filepath.Join(s.root, filepath.FromSlash(name))
	if _, err := pathutil.Relative(s.root, joined); err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrEntryNotFound)
	}
	return joined, nil
}
