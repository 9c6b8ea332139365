//go:build !windows

package shell

import "os/exec"

// Default returns bash when available and sh otherwise.
func Default() Exec {
	if _, err := exec.LookPath("bash"); err == nil {
		return Exec{Program: "bash", Flag: "-c"}
	}
	return Exec{Program: "sh", Flag: "-c"}
}
