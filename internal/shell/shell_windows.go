//go:build windows

package shell

// Default returns cmd.exe.
func Default() Exec {
	return Exec{Program: "cmd", Flag: "/C"}
}
