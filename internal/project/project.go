package project

import (
	"fmt"
	"path/filepath"

	"github.com/Fus3n/python-project-manager/internal/config"
	"github.com/Fus3n/python-project-manager/internal/journal"
	"github.com/Fus3n/python-project-manager/internal/manifest"
	"github.com/Fus3n/python-project-manager/internal/venv"
)

// JournalPath is the drift journal location relative to the project root.
var JournalPath = filepath.Join(".ppm", "journal.yaml")

// Context holds the resolved paths and loaded config for a project.
type Context struct {
	Root         string
	ManifestPath string
	JournalPath  string
	Config       config.Config
	Env          venv.Layout
	Manifest     *manifest.Manifest // nil until Load
}

// Resolve builds a Context for root without reading the manifest. Used by
// commands that create one.
func Resolve(root string) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return &Context{
		Root:         root,
		ManifestPath: filepath.Join(root, manifest.FileName),
		JournalPath:  filepath.Join(root, JournalPath),
		Config:       cfg,
		Env:          venv.New(root, cfg.EnvDir),
	}, nil
}

// Load resolves root and loads its manifest.
func Load(root string) (*Context, error) {
	c, err := Resolve(root)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Load(c.ManifestPath)
	if err != nil {
		return nil, err
	}
	c.Manifest = m
	return c, nil
}

// Save writes the in-memory manifest back to ManifestPath.
func (c *Context) Save() error {
	return manifest.Save(c.ManifestPath, c.Manifest)
}

// OpenJournal opens the drift journal, empty if none was written yet.
func (c *Context) OpenJournal() (*journal.Journal, error) {
	return journal.Open(c.JournalPath)
}

// Path resolves a project-relative path such as main_script.
func (c *Context) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Root, filepath.FromSlash(rel))
}
