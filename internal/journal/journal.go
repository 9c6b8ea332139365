package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Journal is a File bound to its path. Every mutation is written through.
type Journal struct {
	path string
	file *File
	now  func() time.Time
}

// Open loads the journal at path. A missing file yields an empty journal.
func Open(path string) (*Journal, error) {
	j := &Journal{path: path, file: &File{Version: 1}, now: time.Now}
	data, err := os.ReadFile(path) //nolint:gosec // path is the project journal path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			j.file.Packages = map[string]*Entry{}
			return j, nil
		}
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	j.file = f
	return j, nil
}

// Parse parses journal YAML content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing journal YAML: %w", err)
	}
	if f.Version == 0 {
		f.Version = 1
	}
	if f.Packages == nil {
		f.Packages = map[string]*Entry{}
	}
	return &f, nil
}

// Path returns the journal file path.
func (j *Journal) Path() string { return j.path }

// Begin records that op is about to run for name.
func (j *Journal) Begin(name string, op Op, spec string) error {
	j.file.Packages[name] = &Entry{
		Op:        op,
		Spec:      spec,
		State:     StatePending,
		UpdatedAt: j.now().Format(time.RFC3339),
	}
	return j.save()
}

// MarkDrifted records that op succeeded for name but the manifest was not
// updated, with the reason.
func (j *Journal) MarkDrifted(name, version, reason string) error {
	e, ok := j.file.Packages[name]
	if !ok {
		e = &Entry{Op: OpInstall, Spec: name}
		j.file.Packages[name] = e
	}
	e.State = StateDrifted
	e.Version = version
	e.Reason = reason
	e.UpdatedAt = j.now().Format(time.RFC3339)
	return j.save()
}

// Clear drops the entry for name once the manifest reflects it. It also
// drops pending entries whose pip call failed, since nothing changed.
func (j *Journal) Clear(name string) error {
	if _, ok := j.file.Packages[name]; !ok {
		return nil
	}
	delete(j.file.Packages, name)
	return j.save()
}

// Put restores a previously read entry for name.
func (j *Journal) Put(name string, e Entry) error {
	j.file.Packages[name] = &e
	return j.save()
}

// Entry returns the entry for name, if any.
func (j *Journal) Entry(name string) (Entry, bool) {
	e, ok := j.file.Packages[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Names returns the package names with entries, sorted.
func (j *Journal) Names() []string {
	names := make([]string, 0, len(j.file.Packages))
	for n := range j.file.Packages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of unreconciled entries.
func (j *Journal) Len() int { return len(j.file.Packages) }

// save writes the journal, or removes the file once it is empty.
func (j *Journal) save() error {
	if len(j.file.Packages) == 0 {
		if err := os.Remove(j.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing journal: %w", err)
		}
		return nil
	}
	data, err := yaml.Marshal(j.file)
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil { //nolint:gosec // state dir needs to be readable
		return fmt.Errorf("creating journal directory: %w", err)
	}
	if err := os.WriteFile(j.path, data, 0644); err != nil { //nolint:gosec // journal needs to be readable
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}
