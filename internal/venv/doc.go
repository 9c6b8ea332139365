// Package venv locates and creates the project's Python virtual environment.
// The on-disk layout differs between platforms; the differences live in
// layout_unix.go and layout_windows.go.
package venv
