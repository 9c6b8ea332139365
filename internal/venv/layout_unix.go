//go:build !windows

package venv

const (
	binDirName = "bin"
	exeSuffix  = ""

	// DefaultPython is the interpreter used to create new environments.
	DefaultPython = "python3"
)
