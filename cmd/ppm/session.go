package main

import (
	"os"

	"github.com/Fus3n/python-project-manager/internal/engine"
	"github.com/Fus3n/python-project-manager/internal/pip"
	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/registry"
	"github.com/Fus3n/python-project-manager/internal/shell"
	"github.com/Fus3n/python-project-manager/internal/ui"
	"github.com/spf13/cobra"
)

// reporter returns a Reporter bound to the command's output streams.
func reporter(cmd *cobra.Command) *ui.Reporter {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return ui.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), noColor)
}

// loadEngine loads the project under --root and wires an engine for it.
func loadEngine(cmd *cobra.Command) (*engine.Engine, error) {
	root, _ := cmd.Flags().GetString("root")
	pc, err := project.Load(root)
	if err != nil {
		return nil, err
	}
	return newEngine(cmd, pc), nil
}

func newEngine(cmd *cobra.Command, pc *project.Context) *engine.Engine {
	rep := reporter(cmd)
	j, err := pc.OpenJournal()
	if err != nil {
		rep.Warn("ignoring unreadable journal: %v", err)
		j = nil
	}
	return &engine.Engine{
		Project: pc,
		Installer: &pip.Installer{
			Env:    pc.Env,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		},
		Resolver: registry.NewClient(pc.Config.RegistryURL, pc.Config.Timeout()),
		Env:      pc.Env,
		Confirm:  confirmer(cmd, pc.Config.Attempts()),
		Shell:    shell.Default(),
		Launcher: shell.Process{},
		Journal:  j,
		Report:   rep,
		Python:   pc.Config.Python,
		Stdin:    cmd.InOrStdin(),
		Environ:  os.Environ(),
	}
}
