package venv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultDir is the environment directory name inside a project.
const DefaultDir = "venv"

// Layout resolves the executables inside an environment directory.
type Layout struct {
	// Dir is the absolute environment directory.
	Dir string
}

// New returns the layout for dir under root.
func New(root, dir string) Layout {
	if dir == "" {
		dir = DefaultDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return Layout{Dir: dir}
}

// BinDir returns the directory holding the environment's executables.
func (l Layout) BinDir() string {
	return filepath.Join(l.Dir, binDirName)
}

// Pip returns the path of the environment's pip executable.
func (l Layout) Pip() string {
	return filepath.Join(l.BinDir(), "pip"+exeSuffix)
}

// Python returns the path of the environment's interpreter.
func (l Layout) Python() string {
	return filepath.Join(l.BinDir(), "python"+exeSuffix)
}

// Exists reports whether the environment has a bin directory with pip in it.
func (l Layout) Exists() bool {
	info, err := os.Stat(l.BinDir())
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(l.Pip())
	return err == nil
}

// CreationError reports a failed `python -m venv` run.
type CreationError struct {
	Dir    string
	Stderr string
	Err    error
}

func (e *CreationError) Error() string {
	msg := fmt.Sprintf("creating virtual environment %s: %v", e.Dir, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *CreationError) Unwrap() error { return e.Err }

// Create runs `<python> -m venv <dir>`.
func (l Layout) Create(ctx context.Context, python string) error {
	if python == "" {
		python = DefaultPython
	}
	cmd := exec.CommandContext(ctx, python, "-m", "venv", l.Dir) //nolint:gosec // interpreter comes from project config
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &CreationError{Dir: l.Dir, Stderr: stderr.String(), Err: err}
	}
	return nil
}

// PathEnv returns env with the environment's bin directory prepended to PATH
// and VIRTUAL_ENV set.
func (l Layout) PathEnv(env []string) []string {
	out := make([]string, 0, len(env)+2)
	path := ""
	for _, kv := range env {
		k, v, _ := strings.Cut(kv, "=")
		switch {
		case strings.EqualFold(k, "PATH"):
			path = v
		case k == "VIRTUAL_ENV":
		default:
			out = append(out, kv)
		}
	}
	if path == "" {
		path = l.BinDir()
	} else {
		path = l.BinDir() + string(os.PathListSeparator) + path
	}
	return append(out, "PATH="+path, "VIRTUAL_ENV="+l.Dir)
}
