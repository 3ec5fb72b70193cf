package backend

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/ajxudir/spiv/pkg/verbose"
)

// LookPathFunc resolves an executable name on the search path.
//
// It has the signature of exec.LookPath so tests can substitute a fixed PATH.
type LookPathFunc func(name string) (string, error)

// Detector probes the host for a supported package manager.
//
// Fields:
//   - GOOS: Operating system discriminator (runtime.GOOS values)
//   - LookPath: Executable resolver; nil uses DefaultLookPath
type Detector struct {
	GOOS     string
	LookPath LookPathFunc
}

// NewDetector returns a Detector for the running host.
func NewDetector() *Detector {
	return &Detector{GOOS: runtime.GOOS, LookPath: DefaultLookPath}
}

// Detect returns the backend for this host.
//
// It performs the following operations:
//   - On Windows, returns WindowsNative without probing
//   - Otherwise probes apt, dnf and pacman in that order; the first found wins
//   - Returns None when no candidate resolves
//
// The result is not cached; every call probes again.
//
// Returns:
//   - Tag: The detected backend, or None
func (d *Detector) Detect() Tag {
	if d.GOOS == "windows" {
		verbose.Debugf("Probe: %s host, using %s", d.GOOS, WindowsNative.Tool())
		return WindowsNative
	}

	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = DefaultLookPath
	}

	verbose.Debugf("Probe: %s host, checking %d candidates", d.GOOS, len(probeOrder))
	for _, tag := range probeOrder {
		path, err := lookPath(tag.Tool())
		if err != nil {
			verbose.Tracef("%s: not found", tag.Tool())
			continue
		}
		verbose.Tracef("%s: found at %s", tag.Tool(), path)
		return tag
	}

	verbose.Debugf("Probe: no supported package manager found")
	return None
}

// Detect probes the running host using the default resolver.
func Detect() Tag {
	return NewDetector().Detect()
}

// DefaultLookPath resolves name on PATH, falling back to the shell.
//
// It performs the following operations:
//   - First attempts exec.LookPath for fast binary lookup
//   - Falls back to running `command -v <name>` in a shell, which must exit zero
//
// Parameters:
//   - name: The command name to resolve (e.g., "apt")
//
// Returns:
//   - string: Resolved path, or name itself when only the shell could resolve it
//   - error: When the command cannot be resolved either way
func DefaultLookPath(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	if commandExistsInShell(name) {
		return name, nil
	}
	return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
}

// commandExistsInShell checks if a command resolves through `command -v`.
//
// Unlike an interactive login shell, this runs a plain POSIX shell so the
// result depends only on PATH and not on the user's rc files.
func commandExistsInShell(name string) bool {
	shell, args := getShellCommandCheck(name)
	return exec.Command(shell, args...).Run() == nil
}

// getShellCommandCheck returns the shell and args for checking if a command exists.
//
// The name is passed as a positional parameter rather than spliced into the
// script, so it is never interpreted by the shell.
func getShellCommandCheck(name string) (shell string, args []string) {
	shell = "/bin/sh"
	if _, err := os.Stat(shell); err != nil {
		shell = "sh"
	}
	return shell, []string{"-c", `command -v "$1"`, "sh", name}
}
