package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/engine"
	"github.com/Fus3n/python-project-manager/internal/manifest"
	"github.com/Fus3n/python-project-manager/internal/testutil"
)

func addScript(t *testing.T, dir, name, command string) {
	t.Helper()
	m := testutil.ReadManifest(t, dir)
	m.Scripts[name] = command
	if err := manifest.Save(filepath.Join(dir, manifest.FileName), m); err != nil {
		t.Fatal(err)
	}
}

func TestRunRun(t *testing.T) {
	dir, env := setupProject(t, nil, nil)
	addScript(t, dir, "where", `echo "env=$VIRTUAL_ENV" && python --version`)
	before := readFile(t, filepath.Join(dir, "project.toml"))

	r := execute(t, dir, "", "run", "where")
	if r.err != nil {
		t.Fatalf("run failed: %v\n%s", r.err, r.stderr)
	}
	if !strings.Contains(r.stdout, "env="+env.Layout.Dir) {
		t.Errorf("VIRTUAL_ENV not set: %q", r.stdout)
	}
	if !strings.Contains(r.stdout, "Python 3.12.1") {
		t.Errorf("environment python not first on PATH: %q", r.stdout)
	}
	if after := readFile(t, filepath.Join(dir, "project.toml")); after != before {
		t.Error("run modified project.toml")
	}
}

func TestRunRun_unknownScript(t *testing.T) {
	dir, _ := setupProject(t, nil, nil)

	r := execute(t, dir, "", "run", "missing")
	var ve *engine.ValidationError
	if !errors.As(r.err, &ve) {
		t.Fatalf("err = %v, want ValidationError", r.err)
	}
}

func TestRunRun_failingScript(t *testing.T) {
	dir, _ := setupProject(t, nil, nil)
	addScript(t, dir, "fail", "exit 4")

	if r := execute(t, dir, "", "run", "fail"); r.err == nil {
		t.Fatal("expected error from failing script")
	}
}

func TestRunStart(t *testing.T) {
	dir, env := setupProject(t, nil, nil)
	main := filepath.Join(dir, "src", "main.py")
	writeMain(t, main)

	r := execute(t, dir, "", "start")
	if r.err != nil {
		t.Fatalf("start failed: %v\n%s", r.err, r.stderr)
	}
	calls := env.PythonCalls(t)
	if len(calls) != 1 || calls[0] != main {
		t.Errorf("python calls = %v, want [%s]", calls, main)
	}
}

func TestRunStart_missingMain(t *testing.T) {
	dir, _ := setupProject(t, nil, nil)
	r := execute(t, dir, "", "start")
	if r.err == nil || !strings.Contains(r.err.Error(), "main script") {
		t.Errorf("err = %v", r.err)
	}
}
