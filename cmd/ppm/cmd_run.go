package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a script from project.toml",
		Long: `Run a command from the [scripts] table through the system shell, with
the virtual environment's executables first on PATH.`,
		Args:              cobra.ExactArgs(1),
		RunE:              runRun,
		ValidArgsFunction: completeScripts,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	e, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	return e.Run(cmd.Context(), args[0])
}

func completeScripts(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := loadEngine(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, name := range e.Project.Manifest.ScriptNames() {
		if strings.HasPrefix(name, toComplete) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
