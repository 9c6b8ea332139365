package main

import (
	"os"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/testutil"
)

func TestRunClean_requiresForce(t *testing.T) {
	dir, env := setupProject(t, nil, nil)

	r := execute(t, dir, "", "clean")
	if r.err == nil || !strings.Contains(r.err.Error(), "--force") {
		t.Fatalf("err = %v, want --force hint", r.err)
	}
	if _, err := os.Stat(env.Layout.Dir); err != nil {
		t.Errorf("venv removed without --force: %v", err)
	}
}

func TestRunClean_force(t *testing.T) {
	dir, env := setupProject(t, map[string]string{"requests": "2.31.0"}, nil)

	if r := execute(t, dir, "", "clean", "--force"); r.err != nil {
		t.Fatalf("clean failed: %v", r.err)
	}
	if _, err := os.Stat(env.Layout.Dir); !os.IsNotExist(err) {
		t.Errorf("venv still present: %v", err)
	}
	if got := testutil.ReadManifest(t, dir).Packages["requests"]; got != "2.31.0" {
		t.Error("clean must keep project.toml")
	}

	r := execute(t, dir, "", "clean", "--force")
	if r.err != nil || !strings.Contains(r.stdout, "No virtual environment") {
		t.Errorf("second clean: err=%v stdout=%q", r.err, r.stdout)
	}
}
