package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Fus3n/python-project-manager/internal/shell"
)

// EnsureEnv creates the virtual environment after confirmation when it is
// missing. Declining returns ErrCancelled.
func (e *Engine) EnsureEnv(ctx context.Context) error {
	if e.Env.Exists() {
		return nil
	}
	e.Report.Warn("virtual environment not found")
	ok, err := e.Confirm.Confirm("Virtual environment not found. Create it?")
	if err != nil {
		return fmt.Errorf("confirming environment creation: %w", err)
	}
	if !ok {
		return ErrCancelled
	}
	e.Report.Info("Creating virtual environment...")
	if err := e.Env.Create(ctx, e.Python); err != nil {
		return err
	}
	e.Report.Success("Created virtual environment")
	return nil
}

// Run executes a manifest script through the shell with the environment's
// executables first on PATH. The manifest is never modified.
func (e *Engine) Run(ctx context.Context, script string) error {
	command, ok := e.manifest().Scripts[script]
	if !ok {
		return &ValidationError{Kind: "script", Name: script, Problem: "does not exist"}
	}
	e.Report.Detail("> %s", command)
	if err := e.Shell.Run(ctx, command, e.invocation()); err != nil {
		return fmt.Errorf("script %s: %w", script, err)
	}
	return nil
}

// Start runs main_script with the environment's interpreter.
func (e *Engine) Start(ctx context.Context) error {
	main := e.manifest().Project.MainScript
	if main == "" {
		return &ValidationError{Kind: "project", Name: e.manifest().Project.Name, Problem: "has no main_script"}
	}
	path := e.Project.Path(main)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("main script %s not found", main)
		}
		return fmt.Errorf("main script %s: %w", main, err)
	}
	if err := e.EnsureEnv(ctx); err != nil {
		return err
	}
	return e.Launcher.Launch(ctx, e.Env.Python(), []string{path}, e.invocation())
}

func (e *Engine) invocation() shell.Invocation {
	return shell.Invocation{
		Dir:    e.Project.Root,
		Env:    e.Env.PathEnv(e.Environ),
		Stdin:  e.Stdin,
		Stdout: e.Report.Out(),
		Stderr: e.Report.ErrOut(),
	}
}
