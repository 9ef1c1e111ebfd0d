package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passtools/passdir/internal/ui"
)

var keysCmd = &cobra.Command{
	Use:   "keys <name>",
	Short: "Show the recipient keys protecting a secret",
	Long: `Resolves the nearest ancestor .gpg-id manifest of the secret and
prints the recipient keys it names, in manifest order.`,
	Args: cobra.ExactArgs(1),
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

		keys, err := file.EncryptionKeys()
		if err != nil {
			printError("Failed to resolve recipients of "+ui.Name.Sprint(args[0]), err)
			return err
		}

		fmt.Println(ui.Name.Sprint(args[0]) + " is encrypted for:")
		for _, key := range keys {
			fmt.Println("    " + key.UserID() + " " + ui.Muted.Sprint(key.Fingerprint()))
		}
		return nil
	},
}

func init() {
	keysCmd.SilenceUsage = true
}
