package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/passtools/passdir/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Decrypt a secret into $EDITOR and re-encrypt it on save",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			printError("Failed to open the password store", err)
			return err
		}

		file, err := retrieveFile(st, args[0])
		if err != nil {
			printError("Failed to retrieve "+ui.Name.Sprint(args[0]), err)
			return err
		}

		handle, err := file.PlainHandle()
		if err != nil {
			printError("Failed to decrypt "+ui.Name.Sprint(args[0]), err)
			return err
		}
		defer handle.Close()

		edited, err := editInTempFile(args[0], handle.Bytes())
		if err != nil {
			printError("Failed to edit "+ui.Name.Sprint(args[0]), err)
			return err
		}
		handle.SetBytes(edited)

		if !handle.Dirty() {
			fmt.Println(ui.Info.Sprint("→") + " No changes, " + ui.Name.Sprint(args[0]) + " left untouched")
			return nil
		}

		// Sync explicitly so encryption failures reach the user instead
		// of the diagnostic log in the deferred Close.
		if err := handle.Sync(false); err != nil {
			printError("Failed to re-encrypt "+ui.Name.Sprint(args[0]), err)
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " " + ui.Name.Sprint(args[0]) + " re-encrypted for " +
			fmt.Sprint(len(handle.Recipients())) + " recipient(s)")
		return nil
	},
}

// editInTempFile writes content to a private temp file, runs the user's
// editor on it, and returns the edited bytes. The temp file is removed
// afterwards; plaintext only ever touches disk for the editor session.
func editInTempFile(name string, content []byte) ([]byte, error) {
	dir, err := os.MkdirTemp("", "passdir-edit-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	tempPath := filepath.Join(dir, filepath.Base(name)+".txt")
	if err := os.WriteFile(tempPath, content, 0600); err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	editorCmd := exec.Command(editor, tempPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	if err := editorCmd.Run(); err != nil {
		return nil, fmt.Errorf("editor %s failed: %w", editor, err)
	}

	edited, err := os.ReadFile(tempPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return edited, nil
}

func init() {
	editCmd.SilenceUsage = true
}
