package main

import (
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <package[==version]>...",
		Short: "Install packages and record them in project.toml",
		Long: `Install each package into the virtual environment and record it in
project.toml. Packages without a version are pinned to the latest release
on the registry. A failing package does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	return e.Add(cmd.Context(), args).Err()
}
