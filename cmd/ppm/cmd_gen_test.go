package main

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/requirements"
)

func TestRunGen(t *testing.T) {
	dir, _ := setupProject(t, map[string]string{"requests": "2.31.0", "flask": "3.0.0", "attrs": "23.2.0"}, nil)

	r := execute(t, dir, "", "gen")
	if r.err != nil {
		t.Fatalf("gen failed: %v", r.err)
	}
	got := readFile(t, filepath.Join(dir, "requirements.txt"))
	want := "attrs==23.2.0\nflask==3.0.0\nrequests==2.31.0\n"
	if got != want {
		t.Errorf("requirements.txt = %q, want %q", got, want)
	}

	specs, err := requirements.Load(filepath.Join(dir, "requirements.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(specs, []string{"attrs==23.2.0", "flask==3.0.0", "requests==2.31.0"}) {
		t.Errorf("parsed specs = %v", specs)
	}
}

func TestRunGen_output(t *testing.T) {
	dir, _ := setupProject(t, map[string]string{"requests": "2.31.0"}, nil)

	if r := execute(t, dir, "", "gen", "-o", "deps/prod.txt"); r.err != nil {
		t.Fatalf("gen -o failed: %v", r.err)
	}
	if got := readFile(t, filepath.Join(dir, "deps", "prod.txt")); got != "requests==2.31.0\n" {
		t.Errorf("output = %q", got)
	}
}
