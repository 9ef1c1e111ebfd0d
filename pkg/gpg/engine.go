package gpg

import "errors"

// Key is an opaque handle to a resolved encryption key.
type Key interface {
	// Fingerprint returns the key's full fingerprint as uppercase hex.
	Fingerprint() string

	// UserID returns the key's primary user ID, e.g. "Jane Doe <jane@example.com>".
	UserID() string
}

// Engine performs the actual cryptography on behalf of the store.
type Engine interface {
	// Decrypt turns a secret file's ciphertext into plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)

	// Encrypt encrypts plaintext so that every recipient can decrypt it.
	Encrypt(recipients []Key, plaintext []byte) ([]byte, error)

	// ResolveKey resolves a textual key identifier to a Key handle.
	ResolveKey(identifier string) (Key, error)
}

var (
	// ErrUnknownKey indicates a key identifier matched nothing in the keyring.
	ErrUnknownKey = errors.New("no matching key found in keyring")

	// ErrNoRecipients indicates an encryption was requested without any recipients.
	ErrNoRecipients = errors.New("no recipients given for encryption")

	// ErrNoPrivateKey indicates decryption was attempted without a usable private key.
	ErrNoPrivateKey = errors.New("no private key available to decrypt message")
)
