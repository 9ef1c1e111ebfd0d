package cmd

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/passtools/passdir/internal/ui"
	"github.com/passtools/passdir/pkg/store"
)

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "List secrets whose logical names match a glob pattern",
	Long: `Matches logical names against a glob pattern with ** support,
e.g. 'passdir find "work/**/db-*"'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := args[0]
		if !doublestar.ValidatePattern(pattern) {
			err := fmt.Errorf("invalid pattern %q", pattern)
			printError("Cannot search", err)
			return err
		}

		st, err := openStore()
		if err != nil {
			printError("Failed to open the password store", err)
			return err
		}

		entries, err := st.List()
		if err != nil {
			printError("Failed to list the password store", err)
			return err
		}

		var matches []string
		if err := walkFiles(entries, func(file *store.File) error {
			name, err := file.Name()
			if err != nil {
				return err
			}
			if ok, _ := doublestar.Match(pattern, name); ok {
				matches = append(matches, name)
			}
			return nil
		}); err != nil {
			printError("Failed to match entries", err)
			return err
		}

		if len(matches) == 0 {
			fmt.Println(ui.Info.Sprint("→") + " No secrets match " + ui.Name.Sprint(pattern))
			return nil
		}

		sort.Strings(matches)
		for _, name := range matches {
			fmt.Println(name)
		}
		return nil
	},
}

// walkFiles visits every file entry of the tree in unspecified order.
func walkFiles(entries store.EntrySet, visit func(*store.File) error) error {
	for _, path := range entries.Paths() {
		switch entry := entries[path].(type) {
		case *store.File:
			if err := visit(entry); err != nil {
				return err
			}
		case *store.Dir:
			if err := walkFiles(entry.Children(), visit); err != nil {
				return err
			}
		}
	}
	return nil
}
