package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passtools/passdir/internal/ui"
	"github.com/passtools/passdir/pkg/store"
)

var lsCmd = &cobra.Command{
	Use:   "ls [name]",
	Short: "List the entries of the store or one of its directories",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			printError("Failed to open the password store", err)
			return err
		}

		var entries store.EntrySet
		header := "Password Store"
		if len(args) == 0 {
			if entries, err = st.List(); err != nil {
				printError("Failed to list the password store", err)
				return err
			}
		} else {
			entry, err := st.Retrieve(args[0])
			if err != nil {
				printError("Failed to retrieve "+ui.Name.Sprint(args[0]), err)
				return err
			}
			dir, ok := entry.(*store.Dir)
			if !ok {
				err := fmt.Errorf("%s is a secret, not a directory", args[0])
				printError("Cannot list a single secret", err)
				return err
			}
			entries = dir.Children()
			header = args[0]
		}

		fmt.Println(ui.Info.Sprint(header))
		printTree(entries, "")
		return nil
	},
}

func printTree(entries store.EntrySet, indent string) {
	for _, path := range entries.Paths() {
		base := filepath.Base(path)
		switch entry := entries[path].(type) {
		case *store.Dir:
			fmt.Println(indent + ui.Info.Sprint(base))
			printTree(entry.Children(), indent+"    ")
		case *store.File:
			fmt.Println(indent + strings.TrimSuffix(base, store.SecretSuffix))
		}
	}
}
