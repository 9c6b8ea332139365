package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the manifest file name inside a project root.
const FileName = "project.toml"

// ErrNotFound is returned by Load when the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// ParseError reports a manifest that could not be decoded or validated.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing manifest: %v", e.Err)
	}
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Validate checks the manifest for errors.
func Validate(m *Manifest) error { return validate(m) }

// Load reads and validates a project.toml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return m, nil
}

// Parse parses and validates project.toml content.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if !md.IsDefined("project") {
		return nil, &ParseError{Err: errors.New("missing [project] table")}
	}
	m.normalize()
	if err := validate(&m); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &m, nil
}

// Marshal serializes the manifest. Every table is emitted, even when empty.
func Marshal(m *Manifest) ([]byte, error) {
	m.normalize()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Save validates and writes the manifest to disk. The write is not atomic.
func Save(path string, m *Manifest) error {
	if err := validate(m); err != nil {
		return err
	}
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // manifest needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

func validate(m *Manifest) error {
	if strings.TrimSpace(m.Project.Name) == "" {
		return fmt.Errorf("manifest: project.name is required")
	}
	for name, version := range m.Packages {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("manifest: empty package name")
		}
		if strings.TrimSpace(version) == "" {
			return fmt.Errorf("manifest: packages.%s: version is required", name)
		}
	}
	for name := range m.Scripts {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("manifest: empty script name")
		}
	}
	return nil
}
