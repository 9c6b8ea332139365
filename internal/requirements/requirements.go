// Package requirements reads and writes pip requirements files.
package requirements

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the default requirements file written by gen.
const FileName = "requirements.txt"

// CommentMarker drops the whole line wherever it appears, not only at the
// start of the line.
const CommentMarker = "#"

// ErrNotFound is returned by Load when the requirements file does not exist.
var ErrNotFound = errors.New("requirements file not found")

// Load reads the package specs listed in a requirements file.
func Load(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided -r path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Parse returns the specs in r in file order. Lines containing the comment
// marker and blank lines are skipped.
func Parse(r io.Reader) ([]string, error) {
	var specs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, CommentMarker) {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		specs = append(specs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning requirements: %w", err)
	}
	return specs, nil
}

// Write emits one spec per line.
func Write(w io.Writer, specs []string) error {
	for _, s := range specs {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// Save writes specs to path, replacing any existing file. Missing parent
// directories are created.
func Save(path string, specs []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // output directory needs to be readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	f, err := os.Create(path) //nolint:gosec // output path chosen by the user
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := Write(f, specs); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
