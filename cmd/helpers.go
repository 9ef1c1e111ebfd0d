package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/passtools/passdir/internal/configs"
	"github.com/passtools/passdir/internal/ui"
	"github.com/passtools/passdir/pkg/gpg"
	"github.com/passtools/passdir/pkg/store"
)

// startSpinner creates and starts a spinner with the given message when
// not in verbose or debug mode. Returns the spinner and a function that
// should be deferred to clean up. FinalMSG values do not need trailing
// newlines; the cleanup function appends one when missing.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Discard stray log output while the spinner owns the terminal.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// printError reports a command failure on stderr.
func printError(message string, err error) {
	fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+message+"\n"+ui.Error.Sprint("Error: ")+err.Error())
}

// openStore resolves the configuration, loads the OpenPGP keyrings, and
// opens the password store.
func openStore() (*store.Store, error) {
	settings, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	Logger.Debugf("store root: %s", settings.StoreDir)

	// Default keyring locations may simply not exist; only pass along
	// the ones that do.
	var keyrings []string
	for _, path := range settings.Keyrings {
		if _, err := os.Stat(path); err == nil {
			keyrings = append(keyrings, path)
		} else {
			Logger.Debugf("skipping missing keyring %s", path)
		}
	}

	engine, err := gpg.LoadKeyring(keyrings...)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyrings: %w", err)
	}
	engine.SetPassphrasePrompt(promptPassphrase)

	return store.Open(settings.StoreDir, engine, store.WithLogger(Logger))
}

// promptPassphrase asks for a private-key passphrase on the terminal
// without echoing it.
func promptPassphrase() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	defer fmt.Fprintln(os.Stderr)

	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}
	return passphrase, nil
}
