package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/registry"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the project and its environment",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	pc, err := project.Resolve(root)
	if err != nil {
		return err
	}
	ok := true

	// Check the interpreter used to create environments.
	_, _ = fmt.Fprintf(out, "Checking python (%s)... ", pc.Config.Python)
	if pyPath, err := exec.LookPath(pc.Config.Python); err != nil {
		_, _ = fmt.Fprintln(out, "NOT FOUND")
		_, _ = fmt.Fprintln(out, "  python is required to create the virtual environment")
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "%s (%s)\n", interpreterVersion(ctx, pyPath), pyPath)
	}

	// Check the manifest.
	_, _ = fmt.Fprint(out, "Checking project.toml... ")
	if loaded, err := project.Load(root); err != nil {
		_, _ = fmt.Fprintf(out, "FAILED\n  %v\n", err)
		ok = false
	} else {
		m := loaded.Manifest
		_, _ = fmt.Fprintf(out, "%s %s (%d packages, %d scripts)\n",
			m.Project.Name, m.Project.Version, len(m.Packages), len(m.Scripts))
	}

	// Check the virtual environment.
	_, _ = fmt.Fprint(out, "Checking virtual environment... ")
	if pc.Env.Exists() {
		_, _ = fmt.Fprintf(out, "found at %s (%s)\n", pc.Env.Dir, pythonVersion(ctx, pc.Env))
	} else {
		_, _ = fmt.Fprintf(out, "NOT FOUND at %s\n  run 'ppm install' to create it\n", pc.Env.Dir)
		ok = false
	}

	// Check the registry.
	_, _ = fmt.Fprintf(out, "Checking registry (%s)... ", pc.Config.RegistryURL)
	client := registry.NewClient(pc.Config.RegistryURL, pc.Config.Timeout())
	if v, err := client.Latest(ctx, "pip"); err != nil {
		_, _ = fmt.Fprintf(out, "FAILED\n  %v\n", err)
		ok = false
	} else {
		_, _ = fmt.Fprintf(out, "OK (latest pip %s)\n", v)
	}

	// Check for drift left by earlier runs.
	if !checkJournal(out, pc) {
		ok = false
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkJournal lists packages whose environment state may not match
// project.toml. Returns false when there are any.
func checkJournal(out io.Writer, pc *project.Context) bool {
	_, _ = fmt.Fprint(out, "Checking for drift... ")
	j, err := pc.OpenJournal()
	if err != nil {
		_, _ = fmt.Fprintf(out, "FAILED\n  %v\n", err)
		return false
	}
	if j.Len() == 0 {
		_, _ = fmt.Fprintln(out, "none")
		return true
	}
	_, _ = fmt.Fprintf(out, "%d package(s)\n", j.Len())
	for _, name := range j.Names() {
		e, _ := j.Entry(name)
		line := fmt.Sprintf("  %s: %s %s", name, e.State, e.Op)
		if e.Reason != "" {
			line += " (" + e.Reason + ")"
		}
		_, _ = fmt.Fprintln(out, line)
	}
	_, _ = fmt.Fprintln(out, "  re-run 'ppm add' or 'ppm rm' for these packages to reconcile")
	return false
}

func interpreterVersion(ctx context.Context, python string) string {
	out, err := exec.CommandContext(ctx, python, "--version").CombinedOutput() //nolint:gosec // interpreter from project config
	if err != nil {
		return "unknown version"
	}
	return strings.TrimSpace(string(out))
}
