package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtual environment",
		Long: `Remove the project's virtual environment and the drift journal.
project.toml is kept; run 'ppm install' to recreate the environment.`,
		Args: cobra.NoArgs,
		RunE: runClean,
	}
	cmd.Flags().Bool("force", false, "Actually delete (required)")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	force, _ := cmd.Flags().GetBool("force")

	pc, err := project.Load(root)
	if err != nil {
		return err
	}
	rep := reporter(cmd)

	if _, err := os.Stat(pc.Env.Dir); errors.Is(err, fs.ErrNotExist) {
		rep.Info("No virtual environment at %s", pc.Env.Dir)
		return nil
	}
	if !force {
		return fmt.Errorf("refusing to remove %s without --force", pc.Env.Dir)
	}

	if err := os.RemoveAll(pc.Env.Dir); err != nil {
		return fmt.Errorf("removing %s: %w", pc.Env.Dir, err)
	}
	if err := os.Remove(pc.JournalPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		rep.Warn("failed to remove journal: %v", err)
	}
	rep.Success("Removed %s", pc.Env.Dir)
	return nil
}
