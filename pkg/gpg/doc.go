// Package gpg defines the crypto-engine boundary of the password store
// and ships an OpenPGP implementation of it.
//
// # Engine Boundary
//
// The store packages never touch key material directly. They consume the
// Engine interface, which covers exactly three operations:
//
//  1. Decrypt a secret file's ciphertext into plaintext
//  2. Encrypt plaintext for an ordered set of recipient keys
//  3. Resolve a textual key identifier (fingerprint, key ID, e-mail, or
//     user-ID name) to an opaque Key handle
//
// Keeping the boundary this narrow means the store logic can be tested
// against a fake engine and the real OpenPGP machinery can be swapped
// without touching any store code.
//
// # OpenPGP Implementation
//
// OpenPGP is the production engine. It is built on
// github.com/ProtonMail/go-crypto/openpgp, the maintained fork of
// golang.org/x/crypto/openpgp, and reads its keys from ordinary keyring
// files (binary or ASCII-armored). Encrypted private keys are unlocked
// through a passphrase callback supplied by the caller; the library
// never prompts on its own.
//
// Ciphertext produced by Encrypt is a binary OpenPGP message compatible
// with files written by gpg itself.
package gpg
