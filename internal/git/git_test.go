package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !IsGitInstalled() {
		t.Skip("git not installed")
	}
}

func TestInitAndIsRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	if IsRepo(dir) {
		t.Fatal("fresh directory reported as repo")
	}
	if err := Init(dir); err != nil {
		t.Fatalf("init: %v", err)
	}
	if !IsRepo(dir) {
		t.Error("expected IsRepo after init")
	}
}

func TestInitProject(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "project.toml"), []byte("[project]\nname = \"demo\"\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("/build\nvenv/\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	if err := InitProject(dir, "Initial commit", "project.toml", ".gitignore"); err != nil {
		t.Fatalf("InitProject: %v", err)
	}

	out, err := outputQuiet(dir, "log", "--oneline")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Initial commit") {
		t.Errorf("log = %q, want initial commit", out)
	}
	files, err := outputQuiet(dir, "ls-files")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(files, "project.toml") || !strings.Contains(files, ".gitignore") {
		t.Errorf("tracked files = %q", files)
	}
}

func TestAdd_missingPath(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatal(err)
	}
	err := Add(dir, "nope.txt")
	if err == nil {
		t.Fatal("expected error adding a missing path")
	}
	if !strings.Contains(err.Error(), "git add") {
		t.Errorf("error should name the command: %v", err)
	}
}
