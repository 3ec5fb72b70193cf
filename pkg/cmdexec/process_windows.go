//go:build windows

package cmdexec

import (
	"os/exec"
)

// exitStatus returns the child's exit code.
//
// Windows has no signal-terminated state; a killed process reports the code
// passed to TerminateProcess.
func exitStatus(exitErr *exec.ExitError) int {
	return exitErr.ExitCode()
}
