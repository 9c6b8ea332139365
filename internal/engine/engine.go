package engine

import (
	"context"
	"io"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/journal"
	"github.com/Fus3n/python-project-manager/internal/manifest"
	"github.com/Fus3n/python-project-manager/internal/pip"
	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/prompt"
	"github.com/Fus3n/python-project-manager/internal/registry"
	"github.com/Fus3n/python-project-manager/internal/shell"
	"github.com/Fus3n/python-project-manager/internal/ui"
)

// Installer runs the environment's package installer.
type Installer interface {
	Install(ctx context.Context, spec string) (pip.Result, error)
	Uninstall(ctx context.Context, name string) (pip.Result, error)
	InstallAll(ctx context.Context, specs []string) (pip.Result, error)
}

// Environment is the project's virtual environment. venv.Layout implements it.
type Environment interface {
	Exists() bool
	Create(ctx context.Context, python string) error
	Python() string
	PathEnv(env []string) []string
}

// Launcher starts a program directly. shell.Process implements it.
type Launcher interface {
	Launch(ctx context.Context, program string, args []string, inv shell.Invocation) error
}

// Engine runs the sync workflows for one loaded project.
type Engine struct {
	Project   *project.Context
	Installer Installer
	Resolver  registry.Resolver
	Env       Environment
	Confirm   prompt.Confirmer
	Shell     shell.Shell
	Launcher  Launcher
	Journal   *journal.Journal // optional
	Report    *ui.Reporter

	// Python is the interpreter that creates the environment.
	Python string
	// Stdin is handed to scripts and the main script.
	Stdin io.Reader
	// Environ is the base process environment for scripts, usually os.Environ().
	Environ []string
}

// ParseSpec splits "name==version" on the first "==". The version is empty
// when absent; Add rejects a spec whose "==" has nothing after it.
func ParseSpec(s string) (name, version string) {
	name, version, _ = strings.Cut(strings.TrimSpace(s), "==")
	return strings.TrimSpace(name), strings.TrimSpace(version)
}

func (e *Engine) manifest() *manifest.Manifest { return e.Project.Manifest }

func (e *Engine) save() error { return e.Project.Save() }

func (e *Engine) progress(total int) *ui.Progress {
	return ui.NewProgress(e.Report.Out(), total)
}

func (e *Engine) begin(name string, op journal.Op, spec string) {
	if e.Journal == nil {
		return
	}
	if err := e.Journal.Begin(name, op, spec); err != nil {
		e.Report.Warn("journal: %v", err)
	}
}

func (e *Engine) settle(name string) {
	if e.Journal == nil {
		return
	}
	if err := e.Journal.Clear(name); err != nil {
		e.Report.Warn("journal: %v", err)
	}
}

// drift records that name's environment state no longer matches the manifest.
func (e *Engine) drift(s *Summary, name, version, reason string) {
	s.Drifted = append(s.Drifted, name)
	e.Report.Drift("%s: %s", name, reason)
	if e.Journal == nil {
		return
	}
	if err := e.Journal.MarkDrifted(name, version, reason); err != nil {
		e.Report.Warn("journal: %v", err)
	}
}

// journalled runs action for name under a pending journal entry. On failure
// the entry is put back the way it was, since nothing changed.
func (e *Engine) journalled(name string, op journal.Op, spec string, action func() error) error {
	var (
		prev journal.Entry
		had  bool
	)
	if e.Journal != nil {
		prev, had = e.Journal.Entry(name)
	}
	e.begin(name, op, spec)
	err := action()
	if err != nil && e.Journal != nil {
		var jerr error
		if had {
			jerr = e.Journal.Put(name, prev)
		} else {
			jerr = e.Journal.Clear(name)
		}
		if jerr != nil {
			e.Report.Warn("journal: %v", jerr)
		}
	}
	return err
}
