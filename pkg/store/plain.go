package store

import (
	"bytes"
	"fmt"
	"io"
	"os"

	logger "github.com/passtools/passdir/internal/logging"
	"github.com/passtools/passdir/pkg/gpg"
)

// PlainReader is a read-only view of a secret's decrypted content. The
// ciphertext is read and decrypted once at construction; the handle
// holds no open file and offers no write-back.
type PlainReader struct {
	buf []byte
}

// PlainReader decrypts the file into an in-memory buffer and returns a
// read-only handle over it.
func (f *File) PlainReader() (*PlainReader, error) {
	ciphertext, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	plaintext, err := f.store.engine.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s: %w", f.path, err)
	}
	return &PlainReader{buf: plaintext}, nil
}

// Bytes returns the decrypted content.
func (r *PlainReader) Bytes() []byte {
	return r.buf
}

// String returns the decrypted content as a string.
func (r *PlainReader) String() string {
	return string(r.buf)
}

// Reader returns an io.Reader over the decrypted content.
func (r *PlainReader) Reader() io.Reader {
	return bytes.NewReader(r.buf)
}

// PlainFile is a read-write handle on a secret's decrypted content. It
// keeps the current plaintext buffer together with the plaintext as of
// the last successful write-back; the handle is dirty whenever the two
// differ. The recipient key set is captured once at open time and used
// for every re-encryption.
type PlainFile struct {
	path       string
	file       *os.File
	engine     gpg.Engine
	log        logger.Logger
	recipients []gpg.Key
	buf        []byte
	lastSynced []byte
	closed     bool
}

// PlainHandle opens the file, decrypts it into a buffer, and captures
// the recipient key set for later re-encryption. The returned handle
// must be closed; Close attempts a final non-forced Sync whose failure
// is only logged, so callers needing that error must Sync explicitly
// first.
func (f *File) PlainHandle() (*PlainFile, error) {
	handle, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}

	ciphertext, err := io.ReadAll(handle)
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	plaintext, err := f.store.engine.Decrypt(ciphertext)
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("failed to decrypt %s: %w", f.path, err)
	}

	recipients, err := f.store.recipientsFor(f.path)
	if err != nil {
		handle.Close()
		return nil, err
	}

	return &PlainFile{
		path:       f.path,
		file:       handle,
		engine:     f.store.engine,
		log:        f.store.log,
		recipients: recipients,
		buf:        plaintext,
		lastSynced: bytes.Clone(plaintext),
	}, nil
}

// Bytes returns the live plaintext buffer. Mutating the returned slice
// mutates the handle's buffer.
func (p *PlainFile) Bytes() []byte {
	return p.buf
}

// SetBytes replaces the plaintext buffer.
func (p *PlainFile) SetBytes(content []byte) {
	p.buf = bytes.Clone(content)
}

// Recipients returns the key set captured when the handle was opened.
func (p *PlainFile) Recipients() []gpg.Key {
	return p.recipients
}

// Dirty reports whether the buffer differs from the last successfully
// written-back plaintext.
func (p *PlainFile) Dirty() bool {
	return !bytes.Equal(p.buf, p.lastSynced)
}

// Sync encrypts the buffer for the captured recipients and writes the
// ciphertext back to the file. Without force, a clean buffer is a no-op
// and touches neither the engine nor the disk. On any failure the
// buffer and its last-synced snapshot are left unchanged, so the Sync
// can simply be retried.
func (p *PlainFile) Sync(force bool) error {
	if p.closed {
		return os.ErrClosed
	}
	if !force && !p.Dirty() {
		return nil
	}

	ciphertext, err := p.engine.Encrypt(p.recipients, p.buf)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", p.path, err)
	}

	if err := p.file.Truncate(int64(len(ciphertext))); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", p.path, err)
	}
	if _, err := p.file.WriteAt(ciphertext, 0); err != nil {
		return fmt.Errorf("failed to write ciphertext to %s: %w", p.path, err)
	}
	if err := p.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", p.path, err)
	}

	p.lastSynced = bytes.Clone(p.buf)
	return nil
}

// Close attempts a final non-forced Sync and releases the file. A
// failed write-back at this point has no caller left to receive it and
// is reported through the diagnostic logger instead.
func (p *PlainFile) Close() error {
	if p.closed {
		return nil
	}

	if err := p.Sync(false); err != nil {
		p.log.Warnf("failed to write back %s on close: %v", p.path, err)
	}
	p.closed = true

	if err := p.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", p.path, err)
	}
	return nil
}
