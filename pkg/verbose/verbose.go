// Package verbose provides opt-in debug logging for spiv.
//
// Messages go to stderr so they never mix with the backend's stdout.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - func(): Restores the previous writer when called
func SetWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prev := writer
	if w != nil {
		writer = w
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		writer = prev
	}
}

// state returns the enabled flag and writer under a single read lock.
func state() (bool, io.Writer) {
	mu.RLock()
	defer mu.RUnlock()
	return enabled, writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if on, w := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] "+strings.TrimSuffix(format, "\n")+"\n", args...)
	}
}

// Debugf prints a formatted debug message if enabled.
func Debugf(format string, args ...any) {
	Printf(format, args...)
}

// Tracef prints a fine-grained message if enabled.
//
// Trace lines are indented under the [DEBUG] line that precedes them so a
// probe or a multi-step plan reads as one block.
func Tracef(format string, args ...any) {
	if on, w := state(); on {
		_, _ = fmt.Fprintf(w, "        "+format+"\n", args...)
	}
}

// CommandExec logs the argument vector about to be spawned.
//
// Parameters:
//   - argv: The argument vector; argv[0] is the executable
//   - step: 1-based index of the step within its plan
//   - total: Number of steps in the plan
func CommandExec(argv []string, step, total int) {
	if on, w := state(); on {
		_, _ = fmt.Fprintf(w, "[DEBUG] Executing (%d/%d): %s\n", step, total, strings.Join(argv, " "))
	}
}

// CommandResult logs the exit status of a spawned command.
//
// Parameters:
//   - argv: The argument vector that was executed
//   - exitCode: The exit code returned by the command (0 for success)
func CommandResult(argv []string, exitCode int) {
	on, w := state()
	if !on {
		return
	}
	cmd := truncate(strings.Join(argv, " "), 60)
	if exitCode == 0 {
		_, _ = fmt.Fprintf(w, "[DEBUG] Command succeeded: %s\n", cmd)
		return
	}
	_, _ = fmt.Fprintf(w, "[DEBUG] Command failed (exit %d): %s\n", exitCode, cmd)
}

// truncate shortens s to maxLen terminal cells, marking the cut with "...".
// It never splits a rune.
func truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}
