package main

import (
	"os"

	"github.com/passtools/passdir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
