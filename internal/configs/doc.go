// Package configs resolves the passdir CLI configuration.
//
// # Resolution Order
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults: store at ~/.password-store, keyrings at
//     $GNUPGHOME/secring.gpg and $GNUPGHOME/pubring.gpg
//  2. The optional TOML config file at
//     os.UserConfigDir()/passdir/config.toml
//  3. Environment variables: PASSWORD_STORE_DIR for the store root and
//     PASSDIR_KEYRING (colon-separated paths) for the keyrings
//
// The store root is resolved once per invocation and then threaded
// through the library explicitly; nothing in the library reads the
// environment on its own, so tests can run against isolated roots.
package configs
