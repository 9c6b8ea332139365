package main

import (
	"os"

	"github.com/Fus3n/python-project-manager/internal/ui"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		noColor, _ := rootCmd.PersistentFlags().GetBool("no-color")
		ui.NewReporter(os.Stdout, os.Stderr, noColor).Error(err)
		os.Exit(1)
	}
}
