package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passtools/passdir/internal/ui"
	"github.com/passtools/passdir/pkg/store"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Decrypt a secret and print it",
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

		spinner, cleanup := startSpinner("Decrypting " + args[0] + "...")
		plain, err := file.PlainReader()
		if err != nil {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Failed to decrypt " + ui.Name.Sprint(args[0]) + "\n" +
				ui.Error.Sprint("Error: ") + err.Error()
			cleanup()
			return err
		}
		cleanup()

		fmt.Print(ui.EnsureNewline(plain.String()))
		return nil
	},
}

// retrieveFile resolves a logical name that must denote a secret file.
func retrieveFile(st *store.Store, name string) (*store.File, error) {
	entry, err := st.Retrieve(name)
	if err != nil {
		return nil, err
	}
	file, ok := entry.(*store.File)
	if !ok {
		return nil, fmt.Errorf("%s is a directory, not a secret", name)
	}
	return file, nil
}

func init() {
	// Suppress usage noise when the secret itself cannot be decrypted.
	showCmd.SilenceUsage = true
}
