// Package store provides typed, validated access to an on-disk
// hierarchical encrypted password store in the layout used by
// pass(1): one directory tree whose leaf files each hold one
// OpenPGP-encrypted secret.
//
// # Store Layout
//
// The store root is a single directory, resolved once per session
// (PASSWORD_STORE_DIR or ~/.password-store). Secrets are regular files
// with the .gpg suffix; directories nest arbitrarily. A per-directory
// .gpg-id file lists the recipient key identifiers, one per line, and
// is inherited by every secret below it until a closer .gpg-id
// overrides it. Version-control metadata (.git) is ignored.
//
// # Entries
//
// List and Retrieve return Entry values, a two-variant model: *Dir
// (directory with a child set) and *File (one secret). Entry identity
// is the absolute path; a directory's child set is a snapshot, not part
// of its identity. Entries are snapshots of the filesystem at listing
// time and carry no change subscription. Verify re-checks an entry's
// shape on demand; callers must re-verify before trusting a stale
// snapshot.
//
// # File Handles
//
// A *File offers three handle kinds:
//
//   - CipherHandle: the raw ciphertext as an open *os.File
//   - PlainReader: a read-only decrypted buffer
//   - PlainHandle: a read-write decrypted buffer with dirty tracking,
//     explicit Sync(force), and a best-effort write-back on Close
//
// The read-write handle captures its recipient set at open time by
// walking from the file's directory upward to the nearest .gpg-id.
// Sync failures leave the buffer and its last-synced snapshot
// untouched, so a retried Sync is always possible. A Sync failure
// during Close is reported through the store's diagnostic logger only;
// callers who need that error must Sync explicitly before closing.
//
// # Concurrency
//
// All operations are synchronous and block the calling goroutine. The
// store performs no locking: concurrent read-write handles on one file
// race, and the last Sync wins. Callers needing mutual exclusion must
// add it externally.
//
// # Usage
//
//	engine, err := gpg.LoadKeyring(secring)
//	...
//	st, err := store.Open(root, engine)
//	...
//	entry, err := st.Retrieve("folder/subsecret-a")
//	...
//	file := entry.(*store.File)
//	plain, err := file.PlainReader()
//	...
//	fmt.Print(plain.String())
package store
