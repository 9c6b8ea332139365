// Package shell runs manifest script strings through the host shell.
package shell

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Invocation configures one script run.
type Invocation struct {
	Dir    string
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Shell executes a command string verbatim.
type Shell interface {
	Run(ctx context.Context, script string, inv Invocation) error
}

// Exec is a Shell backed by a program that takes the script after a flag,
// like `sh -c <script>` or `cmd /C <script>`.
type Exec struct {
	Program string
	Flag    string
}

// Run executes script and waits for it to finish.
func (s Exec) Run(ctx context.Context, script string, inv Invocation) error {
	cmd := exec.CommandContext(ctx, s.Program, s.Flag, script) //nolint:gosec // scripts come from the project manifest
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", s.Program, s.Flag, err)
	}
	return nil
}

// String returns the shell's program and flag.
func (s Exec) String() string { return s.Program + " " + s.Flag }

// Process launches a program directly, without a shell.
type Process struct{}

// Launch runs program with args and waits for it to finish.
func (Process) Launch(ctx context.Context, program string, args []string, inv Invocation) error {
	cmd := exec.CommandContext(ctx, program, args...) //nolint:gosec // program is the environment interpreter
	cmd.Dir = inv.Dir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", program, err)
	}
	return nil
}
