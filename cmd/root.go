package cmd

import (
	logger "github.com/passtools/passdir/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool

	// Logger is shared by every command and handed to the store as its
	// diagnostic channel.
	Logger logger.Logger

	rootCmd = &cobra.Command{
		Use:   "passdir",
		Short: "passdir - typed access to a pass(1) password store",
		Long: `passdir reads and edits secrets in a standard pass(1) password store:
a directory tree of OpenPGP-encrypted .gpg files with per-directory
.gpg-id recipient manifests.

Run 'passdir help <command>' for details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("initialized with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
