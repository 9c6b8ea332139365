// Package git wraps the few git commands ppm needs to turn a new project
// into a repository with an initial commit.
package git
