package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/passtools/passdir/pkg/pathutil"
)

const (
	configDirName  = "passdir"
	configFileName = "config.toml"

	// envStoreDir designates the store root, like pass itself.
	envStoreDir = "PASSWORD_STORE_DIR"

	// envKeyring overrides the keyring files, colon-separated.
	envKeyring = "PASSDIR_KEYRING"

	// envGnupgHome relocates the default keyring directory.
	envGnupgHome = "GNUPGHOME"

	defaultStoreDir = "~/.password-store"
)

// Settings holds the resolved configuration for one CLI invocation.
type Settings struct {
	// StoreDir is the password store root.
	StoreDir string `toml:"store_dir"`

	// Keyrings are the OpenPGP keyring files loaded into the engine.
	// Secret keyrings must come first so decryption finds private keys.
	Keyrings []string `toml:"keyrings"`
}

// ConfigPath returns the location of the optional user config file.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, configDirName, configFileName), nil
}

// Load resolves the effective settings: built-in defaults, overridden
// by the user config file if present, overridden by environment
// variables. Paths are returned with a leading "~" expanded.
func Load() (*Settings, error) {
	settings := &Settings{}

	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := LoadTOML(configPath, settings); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to check config %s: %w", configPath, err)
	}

	if settings.StoreDir == "" {
		settings.StoreDir = defaultStoreDir
	}
	if dir := os.Getenv(envStoreDir); dir != "" {
		settings.StoreDir = dir
	}
	if settings.StoreDir, err = pathutil.ExpandHome(settings.StoreDir); err != nil {
		return nil, err
	}

	if ring := os.Getenv(envKeyring); ring != "" {
		settings.Keyrings = filepath.SplitList(ring)
	}
	if len(settings.Keyrings) == 0 {
		settings.Keyrings = defaultKeyrings()
	}
	for i, path := range settings.Keyrings {
		if settings.Keyrings[i], err = pathutil.ExpandHome(path); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Save writes the settings to the user config file.
func Save(settings *Settings) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := SaveTOML(configPath, settings); err != nil {
		return fmt.Errorf("failed to save config %s: %w", configPath, err)
	}
	return nil
}

// defaultKeyrings points at the legacy GnuPG keyring files, relocated
// by GNUPGHOME when set. Secret keyring first.
func defaultKeyrings() []string {
	gnupgHome := os.Getenv(envGnupgHome)
	if gnupgHome == "" {
		gnupgHome = "~/.gnupg"
	}
	return []string{
		filepath.Join(gnupgHome, "secring.gpg"),
		filepath.Join(gnupgHome, "pubring.gpg"),
	}
}
