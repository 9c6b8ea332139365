package main

import (
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Run the project's main script",
		Args:  cobra.NoArgs,
		RunE:  runStart,
	}
}

func runStart(cmd *cobra.Command, _ []string) error {
	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	return e.Start(cmd.Context())
}
