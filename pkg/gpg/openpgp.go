package gpg

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// PassphrasePrompt is called when an encrypted private key must be
// unlocked. It returns the passphrase to try.
type PassphrasePrompt func() ([]byte, error)

// OpenPGP is an Engine backed by OpenPGP keyring files.
type OpenPGP struct {
	entities openpgp.EntityList
	prompt   PassphrasePrompt
}

var _ Engine = (*OpenPGP)(nil)

// LoadKeyring builds an OpenPGP engine from one or more keyring files.
// Both binary and ASCII-armored keyrings are accepted. Later files are
// appended, so public and secret keyrings can be loaded together.
func LoadKeyring(paths ...string) (*OpenPGP, error) {
	var entities openpgp.EntityList

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyring %s: %w", path, err)
		}

		list, err := readKeyring(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse keyring %s: %w", path, err)
		}
		entities = append(entities, list...)
	}

	return &OpenPGP{entities: entities}, nil
}

func readKeyring(data []byte) (openpgp.EntityList, error) {
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("-----BEGIN")) {
		return openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	}
	return openpgp.ReadKeyRing(bytes.NewReader(data))
}

// SetPassphrasePrompt installs the callback used to unlock encrypted
// private keys during Decrypt. Without one, only unencrypted private
// keys can be used.
func (g *OpenPGP) SetPassphrasePrompt(prompt PassphrasePrompt) {
	g.prompt = prompt
}

// Decrypt decrypts a binary OpenPGP message with the loaded private keys.
func (g *OpenPGP) Decrypt(ciphertext []byte) ([]byte, error) {
	md, err := openpgp.ReadMessage(bytes.NewReader(ciphertext), g.entities, g.promptFunction(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt message: %w", err)
	}

	plaintext, err := io.ReadAll(md.UnverifiedBody)
	if err != nil {
		return nil, fmt.Errorf("failed to read decrypted message body: %w", err)
	}
	return plaintext, nil
}

// Encrypt encrypts plaintext for every recipient and returns the binary
// OpenPGP message.
func (g *OpenPGP) Encrypt(recipients []Key, plaintext []byte) ([]byte, error) {
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	to := make([]*openpgp.Entity, 0, len(recipients))
	for _, key := range recipients {
		ek, ok := key.(*entityKey)
		if !ok {
			return nil, fmt.Errorf("recipient %s was not resolved by this engine", key.Fingerprint())
		}
		to = append(to, ek.entity)
	}

	var buf bytes.Buffer
	w, err := openpgp.Encrypt(&buf, to, nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to start encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("failed to encrypt plaintext: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize encryption: %w", err)
	}

	return buf.Bytes(), nil
}

// ResolveKey finds the keyring entity matching the given identifier.
// Fingerprints and key IDs match case-insensitively; otherwise the
// identifier must equal an identity's e-mail address, name, or full
// user ID.
func (g *OpenPGP) ResolveKey(identifier string) (Key, error) {
	id := strings.TrimSpace(identifier)

	for _, entity := range g.entities {
		if entityMatches(entity, id) {
			return &entityKey{entity: entity}, nil
		}
	}
	return nil, fmt.Errorf("failed to resolve %q: %w", identifier, ErrUnknownKey)
}

func entityMatches(entity *openpgp.Entity, id string) bool {
	primary := entity.PrimaryKey
	fingerprint := fmt.Sprintf("%X", primary.Fingerprint)
	if strings.EqualFold(id, fingerprint) ||
		strings.EqualFold(id, primary.KeyIdString()) ||
		strings.EqualFold(id, primary.KeyIdShortString()) {
		return true
	}

	for _, identity := range entity.Identities {
		if id == identity.Name {
			return true
		}
		if identity.UserId != nil && (id == identity.UserId.Email || id == identity.UserId.Name) {
			return true
		}
	}
	return false
}

// promptFunction adapts the configured PassphrasePrompt to the callback
// shape openpgp.ReadMessage expects. The returned function unlocks every
// candidate key with the entered passphrase and gives up after a few
// wrong attempts instead of looping forever.
func (g *OpenPGP) promptFunction() openpgp.PromptFunction {
	if g.prompt == nil {
		return nil
	}

	attempts := 0
	return func(keys []openpgp.Key, symmetric bool) ([]byte, error) {
		attempts++
		if attempts > 3 {
			return nil, fmt.Errorf("too many invalid passphrase attempts: %w", ErrNoPrivateKey)
		}

		passphrase, err := g.prompt()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if key.PrivateKey != nil && key.PrivateKey.Encrypted {
				if err := key.PrivateKey.Decrypt(passphrase); err == nil {
					return passphrase, nil
				}
			}
		}
		return passphrase, nil
	}
}

// entityKey wraps an openpgp entity as an opaque Key handle.
type entityKey struct {
	entity *openpgp.Entity
}

func (k *entityKey) Fingerprint() string {
	return fmt.Sprintf("%X", k.entity.PrimaryKey.Fingerprint)
}

func (k *entityKey) UserID() string {
	identity := k.entity.PrimaryIdentity()
	if identity == nil {
		return ""
	}
	return identity.Name
}
