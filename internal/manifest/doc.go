// Package manifest handles parsing and writing of project.toml files.
// The manifest records project metadata, named scripts, and the packages
// pinned in the project's virtual environment.
package manifest
