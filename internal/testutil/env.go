package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/venv"
)

// fakePip logs its argv to <env>/pip.log and fails when any argument's
// package name is listed in <env>/fail.
const fakePip = `#!/bin/sh
dir="$(cd "$(dirname "$0")/.." && pwd)"
echo "$*" >> "$dir/pip.log"
if [ -f "$dir/fail" ]; then
  for arg in "$@"; do
    name="${arg%%==*}"
    if grep -qx -- "$name" "$dir/fail"; then
      echo "ERROR: could not process $arg" >&2
      exit 1
    fi
  done
fi
echo "ok $*"
`

// fakePython answers --version and logs every other invocation to
// <env>/python.log.
const fakePython = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "Python 3.12.1"
  exit 0
fi
dir="$(cd "$(dirname "$0")/.." && pwd)"
echo "$*" >> "$dir/python.log"
`

// fakeBootstrapPython emulates "python -m venv DIR" by copying the fake
// pip and python next to it into DIR/bin.
const fakeBootstrapPython = `#!/bin/sh
if [ "$1" = "-m" ] && [ "$2" = "venv" ]; then
  here="$(dirname "$0")"
  mkdir -p "$3/bin" || exit 1
  cp "$here/pip.tmpl" "$3/bin/pip" && chmod +x "$3/bin/pip" || exit 1
  cp "$here/python.tmpl" "$3/bin/python" && chmod +x "$3/bin/python" || exit 1
  exit 0
fi
echo "unsupported: $*" >&2
exit 2
`

// FakeEnv is a virtual environment whose pip and python are shell scripts.
type FakeEnv struct {
	Layout venv.Layout
}

// RequireShell skips the test on platforms without /bin/sh.
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake environments need /bin/sh")
	}
}

// CreateFakeEnv creates a fake environment under root/venv.
func CreateFakeEnv(t *testing.T, root string) *FakeEnv {
	t.Helper()
	RequireShell(t)
	l := venv.New(root, "")
	if err := os.MkdirAll(l.BinDir(), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	writeExec(t, l.Pip(), fakePip)
	writeExec(t, l.Python(), fakePython)
	return &FakeEnv{Layout: l}
}

// FailOn makes pip exit non-zero for any invocation naming one of pkgs.
func (e *FakeEnv) FailOn(t *testing.T, pkgs ...string) {
	t.Helper()
	data := strings.Join(pkgs, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(e.Layout.Dir, "fail"), []byte(data), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// PipCalls returns the argument lines pip was invoked with, in order.
func (e *FakeEnv) PipCalls(t *testing.T) []string {
	t.Helper()
	return readLines(t, filepath.Join(e.Layout.Dir, "pip.log"))
}

// PythonCalls returns the argument lines python was invoked with, in order.
func (e *FakeEnv) PythonCalls(t *testing.T) []string {
	t.Helper()
	return readLines(t, filepath.Join(e.Layout.Dir, "python.log"))
}

// CreateBootstrapPython writes an interpreter stub that can create a fake
// environment via "-m venv". Returns its path.
func CreateBootstrapPython(t *testing.T) string {
	t.Helper()
	RequireShell(t)
	dir := t.TempDir()
	writeExec(t, filepath.Join(dir, "pip.tmpl"), fakePip)
	writeExec(t, filepath.Join(dir, "python.tmpl"), fakePython)
	py := filepath.Join(dir, "python3")
	writeExec(t, py, fakeBootstrapPython)
	return py
}

func writeExec(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	s := strings.TrimRight(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
