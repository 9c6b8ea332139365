// Package ui renders console output: styled status lines, aligned tables and
// batch progress counters.
package ui
