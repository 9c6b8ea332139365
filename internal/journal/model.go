package journal

// State of a journal entry.
type State string

const (
	// StatePending means pip was started and the manifest not yet written.
	StatePending State = "pending"
	// StateDrifted means pip succeeded but the manifest does not record it.
	StateDrifted State = "drifted"
)

// Op is the pip operation that produced an entry.
type Op string

const (
	OpInstall   Op = "install"
	OpUninstall Op = "uninstall"
)

// File represents .ppm/journal.yaml.
type File struct {
	Version  int               `yaml:"version"`
	Packages map[string]*Entry `yaml:"packages"`
}

// Entry records the last unreconciled action for one package.
type Entry struct {
	Op        Op     `yaml:"op"`
	Spec      string `yaml:"spec"`
	Version   string `yaml:"version,omitempty"`
	State     State  `yaml:"state"`
	Reason    string `yaml:"reason,omitempty"`
	UpdatedAt string `yaml:"updated_at"`
}
