package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ppm",
		Short:         "Python project manager",
		Long:          "ppm keeps project.toml in sync with the project's virtual environment.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("root", ".", "Project directory")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to every prompt")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(
		newNewCmd(),
		newInitCmd(),
		newAddCmd(),
		newRmCmd(),
		newInstallCmd(),
		newUpdateCmd(),
		newRunCmd(),
		newStartCmd(),
		newGenCmd(),
		newInfoCmd(),
		newDoctorCmd(),
		newCleanCmd(),
	)

	return cmd
}
