// Package journal records external package actions that have not yet been
// reflected in project.toml. An entry that outlives its command marks drift
// between the manifest and the virtual environment.
package journal
