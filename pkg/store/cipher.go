package store

import (
	"fmt"
	"os"
)

// CipherFile is a raw handle on a secret file's ciphertext. It embeds
// the open *os.File for positioned reads, writes, and seeks; nothing is
// decrypted. Use it when the ciphertext itself must be inspected or
// replaced wholesale.
type CipherFile struct {
	*os.File
}

// CipherHandle opens the file's ciphertext for reading and writing. The
// file must already exist.
func (f *File) CipherHandle() (*CipherFile, error) {
	handle, err := os.OpenFile(f.path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	return &CipherFile{File: handle}, nil
}
