package store

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/passtools/passdir/pkg/gpg"
)

// The fake engine produces transparent "ciphertext": a fixed header, an
// optional nonce line that changes on every encryption, then the
// plaintext. Tests write fixture files in the same format.

const fakeCipherHeader = "fake-cipher\n"

type fakeKey string

func (k fakeKey) Fingerprint() string {
	return strings.ToUpper(string(k))
}

func (k fakeKey) UserID() string {
	return string(k) + " <" + string(k) + "@example.com>"
}

type fakeEngine struct {
	known          map[string]bool
	encryptCalls   int
	decryptCalls   int
	failEncrypt    bool
	lastRecipients []gpg.Key
}

func newFakeEngine(identifiers ...string) *fakeEngine {
	known := make(map[string]bool, len(identifiers))
	for _, id := range identifiers {
		known[id] = true
	}
	return &fakeEngine{known: known}
}

func (e *fakeEngine) Decrypt(ciphertext []byte) ([]byte, error) {
	e.decryptCalls++

	rest, ok := bytes.CutPrefix(ciphertext, []byte(fakeCipherHeader))
	if !ok {
		return nil, errors.New("fake engine: not a fake ciphertext")
	}
	if bytes.HasPrefix(rest, []byte("nonce:")) {
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[i+1:]
		}
	}
	return bytes.Clone(rest), nil
}

func (e *fakeEngine) Encrypt(recipients []gpg.Key, plaintext []byte) ([]byte, error) {
	if e.failEncrypt {
		return nil, errors.New("fake engine: encryption failure")
	}
	if len(recipients) == 0 {
		return nil, gpg.ErrNoRecipients
	}

	e.encryptCalls++
	e.lastRecipients = recipients
	return []byte(fakeCipherHeader + fmt.Sprintf("nonce:%d\n", e.encryptCalls) + string(plaintext)), nil
}

func (e *fakeEngine) ResolveKey(identifier string) (gpg.Key, error) {
	if !e.known[identifier] {
		return nil, fmt.Errorf("fake engine: %q: %w", identifier, gpg.ErrUnknownKey)
	}
	return fakeKey(identifier), nil
}
