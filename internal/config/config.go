// Package config loads optional per-project tool settings from .ppm.yaml.
// A missing file means defaults; project.toml stays the only source of
// truth for project metadata and packages.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Fus3n/python-project-manager/internal/registry"
	"github.com/Fus3n/python-project-manager/internal/venv"
)

// FileName is the settings file inside a project root.
const FileName = ".ppm.yaml"

// DefaultConfirmAttempts bounds the line-based yes/no prompt.
const DefaultConfirmAttempts = 5

// Config models .ppm.yaml.
type Config struct {
	// EnvDir is the virtual environment directory, relative to the project root.
	EnvDir string `yaml:"env_dir"`

	// Python creates new environments.
	Python string `yaml:"python"`

	// RegistryURL is the base of the PyPI JSON API.
	RegistryURL string `yaml:"registry_url"`

	// RequestTimeout bounds registry lookups. Zero means no timeout.
	RequestTimeout Duration `yaml:"request_timeout"`

	// ConfirmAttempts bounds re-asking a yes/no question. Zero means ask
	// until answered.
	ConfirmAttempts *int `yaml:"confirm_attempts"`
}

// Duration unmarshals from Go duration strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if d == 0 {
		return "", nil
	}
	return time.Duration(d).String(), nil
}

// Default returns the settings used when no file is present.
func Default() Config {
	attempts := DefaultConfirmAttempts
	return Config{
		EnvDir:          venv.DefaultDir,
		Python:          venv.DefaultPython,
		RegistryURL:     registry.DefaultBaseURL,
		ConfirmAttempts: &attempts,
	}
}

// Load reads root/.ppm.yaml, falling back to defaults for a missing file and
// for unset keys.
func Load(root string) (Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is the project settings file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return parsed, nil
}

// Attempts returns the confirm attempt bound.
func (c Config) Attempts() int {
	if c.ConfirmAttempts == nil {
		return DefaultConfirmAttempts
	}
	return *c.ConfirmAttempts
}

// Timeout returns the registry request timeout.
func (c Config) Timeout() time.Duration { return time.Duration(c.RequestTimeout) }

func (c *Config) applyDefaults() {
	d := Default()
	c.EnvDir = strings.TrimSpace(c.EnvDir)
	if c.EnvDir == "" {
		c.EnvDir = d.EnvDir
	}
	c.Python = strings.TrimSpace(c.Python)
	if c.Python == "" {
		c.Python = d.Python
	}
	c.RegistryURL = strings.TrimRight(strings.TrimSpace(c.RegistryURL), "/")
	if c.RegistryURL == "" {
		c.RegistryURL = d.RegistryURL
	}
	if c.ConfirmAttempts == nil {
		c.ConfirmAttempts = d.ConfirmAttempts
	}
}

func (c *Config) validate() error {
	if filepath.IsAbs(c.EnvDir) {
		return fmt.Errorf("env_dir must be relative to the project: %s", c.EnvDir)
	}
	cleaned := filepath.Clean(c.EnvDir)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("env_dir must stay inside the project: %s", c.EnvDir)
	}
	if !strings.HasPrefix(c.RegistryURL, "http://") && !strings.HasPrefix(c.RegistryURL, "https://") {
		return fmt.Errorf("registry_url must be an http(s) URL: %s", c.RegistryURL)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	if *c.ConfirmAttempts < 0 {
		return fmt.Errorf("confirm_attempts must not be negative")
	}
	return nil
}
