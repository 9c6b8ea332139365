// Package project resolves a project directory into the paths every command
// works against: the manifest, the environment, the drift journal and the
// optional tool settings.
package project
