package main

import (
	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <package>...",
		Aliases: []string{"remove"},
		Short:   "Uninstall packages and drop them from project.toml",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runRm,
	}
}

func runRm(cmd *cobra.Command, args []string) error {
	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	return e.Remove(cmd.Context(), args).Err()
}
