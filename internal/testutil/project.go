package testutil

import (
	"path/filepath"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/manifest"
)

// WriteManifest writes a project.toml with the given packages to dir.
func WriteManifest(t *testing.T, dir string, packages map[string]string) *manifest.Manifest {
	t.Helper()
	m := manifest.New("demo", "", "", "./src/main.py")
	for k, v := range packages {
		m.Packages[k] = v
	}
	if err := manifest.Save(filepath.Join(dir, manifest.FileName), m); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return m
}

// ReadManifest loads dir/project.toml or fails the test.
func ReadManifest(t *testing.T, dir string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load(filepath.Join(dir, manifest.FileName))
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	return m
}
