// Package pip drives the pip executable inside a project's virtual
// environment. Each call spawns one pip process and reports success from its
// exit status.
package pip
