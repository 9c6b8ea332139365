// Package engine keeps project.toml in step with the project's virtual
// environment.
//
// Every workflow orders the external action (pip, registry lookup) strictly
// before the manifest mutation: a package is only recorded once its install
// call succeeded, and only forgotten once its uninstall call succeeded. Add
// and Remove persist after every item; Update persists once at the end.
// When an external action succeeds but recording it fails, the package is
// marked drifted in the journal and a warning is printed.
package engine
