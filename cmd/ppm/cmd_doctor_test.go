package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/project"
	"github.com/Fus3n/python-project-manager/internal/testutil"
)

func TestRunDoctor_healthy(t *testing.T) {
	dir, _ := setupProject(t, nil, map[string]string{"pip": "24.0"})

	r := execute(t, dir, "", "doctor")
	if r.err != nil {
		t.Fatalf("doctor failed: %v\n%s", r.err, r.stdout)
	}
	for _, want := range []string{"Checking python", "demo 0.1.0", "found at", "OK (latest pip 24.0)", "drift... none", "All checks passed."} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, r.stdout)
		}
	}
}

func TestRunDoctor_reportsProblems(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, nil)
	srv := serveRegistry(t, nil)
	writeConfig(t, dir,
		fmt.Sprintf("registry_url: %s", srv.URL),
		fmt.Sprintf("python: %s", testutil.CreateBootstrapPython(t)),
	)
	pc, err := project.Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	j, err := pc.OpenJournal()
	if err != nil {
		t.Fatal(err)
	}
	if err := j.MarkDrifted("numpy", "", "version unknown"); err != nil {
		t.Fatal(err)
	}

	r := execute(t, dir, "", "doctor")
	if r.err == nil {
		t.Fatal("expected doctor to fail")
	}
	for _, want := range []string{"NOT FOUND at", "registry returned 404", "numpy: drifted install (version unknown)", "Some checks failed."} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, r.stdout)
		}
	}
}
