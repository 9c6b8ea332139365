package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fus3n/python-project-manager/internal/testutil"
)

// serveRegistry starts a fake PyPI JSON API answering for versions.
func serveRegistry(t *testing.T, versions map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "/json")
		v, ok := versions[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"info": map[string]string{"version": v}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig writes .ppm.yaml into dir.
func writeConfig(t *testing.T, dir string, lines ...string) {
	t.Helper()
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".ppm.yaml"), []byte(data), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// setupProject creates a project with the given packages, a fake environment,
// and a fake registry answering for versions.
func setupProject(t *testing.T, packages, versions map[string]string) (string, *testutil.FakeEnv) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteManifest(t, dir, packages)
	env := testutil.CreateFakeEnv(t, dir)
	srv := serveRegistry(t, versions)
	writeConfig(t, dir,
		fmt.Sprintf("registry_url: %s", srv.URL),
		fmt.Sprintf("python: %s", testutil.CreateBootstrapPython(t)),
	)
	return dir, env
}

type result struct {
	stdout, stderr string
	err            error
}

// execute runs ppm with args against dir, feeding stdin.
func execute(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--root", dir, "--no-color"}, args...))
	err := root.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func writeMain(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(starterMain), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}
