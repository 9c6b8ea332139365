package main

import (
	"path/filepath"

	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/requirements"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write the pinned packages to a requirements file",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}
	cmd.Flags().StringP("output", "o", requirements.FileName, "Output path, relative to the project root")
	return cmd
}

func runGen(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	out, _ := cmd.Flags().GetString("output")

	pc, err := project.Load(root)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(pc.Root, out)
	}

	pins := pc.Manifest.Pins()
	if err := requirements.Save(out, pins); err != nil {
		return err
	}
	reporter(cmd).Success("Wrote %d packages to %s", len(pins), out)
	return nil
}
