// Package logger provides leveled, colored logging for the passdir CLI
// and a diagnostic channel for the store library.
//
// # Verbosity Levels
//
// Output is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr regardless of flags.
//
// # Store Diagnostics
//
// The store's read-write plaintext handle attempts a best-effort
// write-back when it is closed. A failure at that point has no caller
// left to receive it, so it is reported through a Logger instead of an
// error return. The zero Logger is quiet but still surfaces those
// warnings, which is exactly the behavior the store needs by default.
//
// # Usage
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("listing %d entries", count)
package logger
