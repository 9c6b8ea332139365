package main

import (
	"errors"
	"path/filepath"

	"github.com/Fus3n/python-project-manager/internal/engine"
	"github.com/spf13/cobra"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the packages recorded in project.toml",
		Long: `Without flags, reinstall every package pinned in project.toml in one pip
call. With -r, add every package listed in a requirements file, skipping any
line that contains a '#'.`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}
	cmd.Flags().StringP("requirements", "r", "", "Add packages from a requirements file")
	return cmd
}

func runInstall(cmd *cobra.Command, _ []string) error {
	reqPath, _ := cmd.Flags().GetString("requirements")

	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}

	if reqPath != "" {
		if !filepath.IsAbs(reqPath) {
			reqPath = filepath.Join(e.Project.Root, reqPath)
		}
		s, err := e.InstallRequirements(cmd.Context(), reqPath)
		if err != nil {
			return err
		}
		return s.Err()
	}

	err = e.InstallAll(cmd.Context())
	if errors.Is(err, engine.ErrNothingToInstall) {
		e.Report.Info("No packages to install")
		return nil
	}
	return err
}
