package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/git"
	"github.com/Fus3n/python-project-manager/internal/manifest"
	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/spf13/cobra"
)

const starterMain = `def main():
    print("Hello From PPM!")


if __name__ == "__main__":
    main()
`

// scaffold describes a project about to be written to disk.
type scaffold struct {
	Dir         string
	Name        string
	Version     string
	Description string
	MainScript  string
	Git         bool
	NoVenv      bool
}

func addScaffoldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("version", "v", manifest.DefaultVersion, "Project version")
	cmd.Flags().StringP("description", "d", "", "Project description")
	cmd.Flags().BoolP("git", "g", false, "Initialize a git repository")
	cmd.Flags().BoolP("no-venv", "e", false, "Skip creating the virtual environment")
}

func readScaffoldFlags(cmd *cobra.Command, s *scaffold) {
	s.Version, _ = cmd.Flags().GetString("version")
	s.Description, _ = cmd.Flags().GetString("description")
	s.Git, _ = cmd.Flags().GetBool("git")
	s.NoVenv, _ = cmd.Flags().GetBool("no-venv")
}

func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new project in a new directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runNew,
	}
	addScaffoldFlags(cmd)
	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("root")

	if err := projectNameValidator(name); err != nil {
		return err
	}
	dir := filepath.Join(root, name)
	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		return fmt.Errorf("directory %s already exists and is not empty", dir)
	}

	s := scaffold{Dir: dir, Name: name, MainScript: "./src/main.py"}
	readScaffoldFlags(cmd, &s)
	return createProject(cmd, s)
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a project in the current directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}
	addScaffoldFlags(cmd)
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	dir, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err == nil {
		return fmt.Errorf("%s already exists in %s", manifest.FileName, dir)
	}

	name := filepath.Base(dir)
	switch {
	case len(args) == 1:
		name = args[0]
	case isInteractive(cmd):
		name, err = promptInput("Project name", name, projectNameValidator)
		if err != nil {
			return fmt.Errorf("reading project name: %w", err)
		}
	}
	if err := projectNameValidator(name); err != nil {
		return err
	}

	s := scaffold{Dir: dir, Name: strings.TrimSpace(name), MainScript: "./main.py"}
	readScaffoldFlags(cmd, &s)
	return createProject(cmd, s)
}

// createProject writes the manifest and starter script, then optionally sets
// up git and the virtual environment. Failures of the optional steps are
// reported as warnings.
func createProject(cmd *cobra.Command, s scaffold) error {
	rep := reporter(cmd)
	m := manifest.New(s.Name, s.Version, s.Description, s.MainScript)
	if err := manifest.Validate(m); err != nil {
		return err
	}

	mainPath := filepath.Join(s.Dir, filepath.FromSlash(s.MainScript))
	if err := os.MkdirAll(filepath.Dir(mainPath), 0755); err != nil { //nolint:gosec // project dir needs to be world-readable
		return fmt.Errorf("creating project directory: %w", err)
	}
	if _, err := os.Stat(mainPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(starterMain), 0644); err != nil { //nolint:gosec // source file needs to be readable
			return fmt.Errorf("writing %s: %w", s.MainScript, err)
		}
	}

	pc, err := project.Resolve(s.Dir)
	if err != nil {
		return err
	}
	if err := manifest.Save(pc.ManifestPath, m); err != nil {
		return err
	}

	if s.Git {
		initGitRepo(cmd, pc, s.MainScript)
	}

	if !s.NoVenv {
		rep.Info("Creating virtual environment...")
		if err := pc.Env.Create(cmd.Context(), pc.Config.Python); err != nil {
			rep.Warn("failed to set up virtual environment: %v", err)
		}
	}

	rep.Success("Project %q created at %s", s.Name, pc.Root)
	return nil
}

// initGitRepo initializes a git repository in the project directory.
// Errors are reported as warnings and do not prevent project creation.
func initGitRepo(cmd *cobra.Command, pc *project.Context, mainScript string) {
	rep := reporter(cmd)
	if !git.IsGitInstalled() {
		rep.Warn("git is not installed; skipping git initialization")
		return
	}

	gitignorePath := filepath.Join(pc.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(gitignorePath, []byte(generateGitignore(pc.Config.EnvDir)), 0644); err != nil { //nolint:gosec // .gitignore needs to be readable
			rep.Warn("failed to write .gitignore: %v", err)
			return
		}
	}

	paths := []string{manifest.FileName, ".gitignore", filepath.FromSlash(strings.TrimPrefix(mainScript, "./"))}
	if err := git.InitProject(pc.Root, "Initialize project", paths...); err != nil {
		rep.Warn("git setup failed: %v", err)
	}
}

// generateGitignore ignores build output, the environment and ppm's state.
func generateGitignore(envDir string) string {
	dir := strings.TrimSuffix(filepath.ToSlash(envDir), "/") + "/"
	return "/build\n" + dir + "\n__pycache__/\n.ppm/\n"
}
