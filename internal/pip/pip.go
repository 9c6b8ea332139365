package pip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Fus3n/python-project-manager/internal/venv"
)

var (
	// ErrEnvironmentMissing is returned without spawning pip when the
	// virtual environment does not exist.
	ErrEnvironmentMissing = errors.New("virtual environment not found")

	// ErrProcess is wrapped by every *ProcessError.
	ErrProcess = errors.New("pip failed")
)

// Result holds the captured output of one pip invocation.
type Result struct {
	Stdout string
	Stderr string
}

// ProcessError reports a pip invocation that could not start or exited
// non-zero.
type ProcessError struct {
	Args     []string
	ExitCode int // -1 when the process did not start
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	cmd := "pip " + strings.Join(e.Args, " ")
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s: %v", cmd, e.Err)
	}
	msg := fmt.Sprintf("%s: exit status %d", cmd, e.ExitCode)
	if line := lastLine(e.Stderr); line != "" {
		msg += ": " + line
	}
	return msg
}

func (e *ProcessError) Unwrap() []error { return []error{ErrProcess, e.Err} }

// Installer runs pip from an environment layout.
type Installer struct {
	Env venv.Layout

	// Stdout and Stderr, when set, receive pip's output as it is produced in
	// addition to the captured Result.
	Stdout io.Writer
	Stderr io.Writer
}

// Install installs a bare name or a name==version spec.
func (i *Installer) Install(ctx context.Context, spec string) (Result, error) {
	return i.run(ctx, "install", spec)
}

// Uninstall removes a package without prompting.
func (i *Installer) Uninstall(ctx context.Context, name string) (Result, error) {
	return i.run(ctx, "uninstall", "-y", name)
}

// InstallAll installs every spec with a single pip invocation.
func (i *Installer) InstallAll(ctx context.Context, specs []string) (Result, error) {
	if len(specs) == 0 {
		return Result{}, nil
	}
	return i.run(ctx, append([]string{"install"}, specs...)...)
}

func (i *Installer) run(ctx context.Context, args ...string) (Result, error) {
	if !i.Env.Exists() {
		return Result{}, fmt.Errorf("%w at %s", ErrEnvironmentMissing, i.Env.Dir)
	}

	cmd := exec.CommandContext(ctx, i.Env.Pip(), args...) //nolint:gosec // args are package specs from the user
	cmd.Dir = i.Env.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = tee(&stdout, i.Stdout)
	cmd.Stderr = tee(&stderr, i.Stderr)

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		pe := &ProcessError{Args: args, ExitCode: -1, Stderr: res.Stderr, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			pe.ExitCode = exitErr.ExitCode()
		}
		return res, pe
	}
	return res, nil
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
