package manifest

import "sort"

// DefaultVersion is the project version used when none is given.
const DefaultVersion = "0.1.0"

// Manifest represents the top-level project.toml manifest.
type Manifest struct {
	Project  Project           `toml:"project"`
	Packages map[string]string `toml:"packages"`
	Scripts  map[string]string `toml:"scripts"`
}

// Project holds the metadata written once at project creation.
type Project struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	MainScript  string `toml:"main_script"`

	// LegacyMain is the older spelling of main_script. It is folded into
	// MainScript on parse and never written back.
	LegacyMain string `toml:"main,omitempty"`
}

// New builds a manifest for a freshly created project, including the
// default upgrade-pip script.
func New(name, version, description, mainScript string) *Manifest {
	if version == "" {
		version = DefaultVersion
	}
	return &Manifest{
		Project: Project{
			Name:        name,
			Version:     version,
			Description: description,
			MainScript:  mainScript,
		},
		Packages: map[string]string{},
		Scripts: map[string]string{
			"upgrade-pip": "python -m pip install --upgrade pip",
		},
	}
}

// PackageNames returns the package names in lexical order.
func (m *Manifest) PackageNames() []string {
	return sortedKeys(m.Packages)
}

// ScriptNames returns the script names in lexical order.
func (m *Manifest) ScriptNames() []string {
	return sortedKeys(m.Scripts)
}

// Pins returns "name==version" for every package, sorted by name.
func (m *Manifest) Pins() []string {
	names := m.PackageNames()
	pins := make([]string, 0, len(names))
	for _, n := range names {
		pins = append(pins, n+"=="+m.Packages[n])
	}
	return pins
}

// HasPackage reports whether name is recorded in the manifest.
func (m *Manifest) HasPackage(name string) bool {
	_, ok := m.Packages[name]
	return ok
}

// normalize fills absent tables and folds legacy keys.
func (m *Manifest) normalize() {
	if m.Packages == nil {
		m.Packages = map[string]string{}
	}
	if m.Scripts == nil {
		m.Scripts = map[string]string{}
	}
	if m.Project.MainScript == "" {
		m.Project.MainScript = m.Project.LegacyMain
	}
	m.Project.LegacyMain = ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
