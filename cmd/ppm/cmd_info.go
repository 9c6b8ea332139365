package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/journal"
	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/ui"
	"github.com/Fus3n/python-project-manager/internal/venv"
	"github.com/spf13/cobra"
)

// maxInfoPackages caps the package table; --json always lists everything.
const maxInfoPackages = 10

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show project details, scripts and packages",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type packageInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	State   string `json:"state"`
}

type driftInfo struct {
	Name    string `json:"name"`
	Op      string `json:"op"`
	Version string `json:"version,omitempty"`
	State   string `json:"state"`
	Reason  string `json:"reason,omitempty"`
}

type projectInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	MainScript  string            `json:"main_script"`
	Python      string            `json:"python,omitempty"`
	EnvDir      string            `json:"env_dir"`
	EnvReady    bool              `json:"env_ready"`
	Scripts     map[string]string `json:"scripts"`
	Packages    []packageInfo     `json:"packages"`
	Drift       []driftInfo       `json:"drift,omitempty"`
}

func runInfo(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	asJSON, _ := cmd.Flags().GetBool("json")

	pc, err := project.Load(root)
	if err != nil {
		return err
	}
	j, err := pc.OpenJournal()
	if err != nil {
		return err
	}
	info := collectInfo(cmd.Context(), pc, j)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	python := info.Python
	if python == "" {
		python = "no virtual environment (run 'ppm install' to create it)"
	}
	_, _ = fmt.Fprintf(out, "Project:      %s %s\n", info.Name, info.Version)
	if info.Description != "" {
		_, _ = fmt.Fprintf(out, "Description:  %s\n", info.Description)
	}
	_, _ = fmt.Fprintf(out, "Main script:  %s\n", info.MainScript)
	_, _ = fmt.Fprintf(out, "Python:       %s\n", python)

	_, _ = fmt.Fprintln(out)
	scripts := ui.NewTable(out, "SCRIPT", "COMMAND")
	for _, name := range pc.Manifest.ScriptNames() {
		scripts.Row(name, info.Scripts[name])
	}
	if err := scripts.Flush(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	pkgs := ui.NewTable(out, "PACKAGE", "VERSION", "STATE").Limit(maxInfoPackages)
	for _, p := range info.Packages {
		pkgs.Row(p.Name, p.Version, p.State)
	}
	if err := pkgs.Flush(); err != nil {
		return err
	}

	if len(info.Drift) > 0 {
		rep := reporter(cmd)
		for _, d := range info.Drift {
			rep.Drift("%s (%s, %s): %s", d.Name, d.Op, d.State, d.Reason)
		}
	}
	return nil
}

func collectInfo(ctx context.Context, pc *project.Context, j *journal.Journal) projectInfo {
	m := pc.Manifest
	info := projectInfo{
		Name:        m.Project.Name,
		Version:     m.Project.Version,
		Description: m.Project.Description,
		MainScript:  m.Project.MainScript,
		EnvDir:      pc.Env.Dir,
		EnvReady:    pc.Env.Exists(),
		Scripts:     m.Scripts,
		Packages:    make([]packageInfo, 0, len(m.Packages)),
	}
	if info.EnvReady {
		info.Python = pythonVersion(ctx, pc.Env)
	}

	for _, name := range m.PackageNames() {
		state := "ok"
		if e, ok := j.Entry(name); ok {
			state = string(e.State)
		}
		info.Packages = append(info.Packages, packageInfo{Name: name, Version: m.Packages[name], State: state})
	}
	for _, name := range j.Names() {
		e, _ := j.Entry(name)
		info.Drift = append(info.Drift, driftInfo{
			Name:    name,
			Op:      string(e.Op),
			Version: e.Version,
			State:   string(e.State),
			Reason:  e.Reason,
		})
	}
	return info
}

// pythonVersion asks the environment's interpreter for its version.
func pythonVersion(ctx context.Context, env venv.Layout) string {
	out, err := exec.CommandContext(ctx, env.Python(), "--version").CombinedOutput() //nolint:gosec // interpreter inside the project environment
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
