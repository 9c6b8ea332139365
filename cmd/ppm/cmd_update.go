package main

import (
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Upgrade every package to its latest release",
		Long: `Reinstall every package in project.toml at the latest version on the
registry. project.toml is written once, after all packages were processed;
packages that failed keep their previous pin.`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	s, err := e.Update(cmd.Context())
	if err != nil {
		return err
	}
	return s.Err()
}
