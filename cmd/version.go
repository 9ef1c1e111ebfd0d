package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the passdir version",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewFigure("passdir", "", true)
		banner.Print()
		fmt.Println("version " + Version)
	},
}
