//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// exitStatus converts a wait status into a shell-style exit code.
//
// A child killed by a signal reports 128 plus the signal number, the same
// value a POSIX shell would expose as $?.
func exitStatus(exitErr *exec.ExitError) int {
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return exitErr.ExitCode()
}
