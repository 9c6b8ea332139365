//go:build windows

package venv

const (
	binDirName = "Scripts"
	exeSuffix  = ".exe"

	// DefaultPython is the interpreter used to create new environments.
	DefaultPython = "python"
)
