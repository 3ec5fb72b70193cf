// Package cmdexec spawns backend processes for spiv.
//
// Commands are executed directly from an argument vector, never through a
// shell, and inherit the caller's standard streams so interactive prompts
// from the backend (sudo passwords, conflict questions) still work.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

// Streams are the standard streams handed to a child process.
//
// A nil field inherits the corresponding stream of the current process.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Runner spawns a process and waits for it to exit.
//
// Run returns the child's exit status. The error is non-nil only when the
// process could not be launched at all; a child that ran and failed is
// reported through the status alone.
type Runner interface {
	Run(ctx context.Context, argv []string, streams Streams) (int, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, argv []string, streams Streams) (int, error)

// Run calls f(ctx, argv, streams).
func (f RunnerFunc) Run(ctx context.Context, argv []string, streams Streams) (int, error) {
	return f(ctx, argv, streams)
}

// ErrEmptyCommand is returned when Run is called without an executable.
var ErrEmptyCommand = errors.New("empty command")

// SystemRunner runs commands on the host operating system.
type SystemRunner struct{}

// Default is the runner used when callers do not supply one.
//
// It can be replaced with a recording runner for testing.
var Default Runner = SystemRunner{}

// Run executes argv and waits for completion.
//
// It performs the following operations:
//   - Resolves argv[0] on PATH and starts it with argv[1:] as arguments
//   - Wires the given streams, inheriting the parent's for nil fields
//   - Waits for exit and translates the wait status into an exit code
//
// The child stays in the caller's process group, so an interrupt typed at
// the terminal reaches it directly. While the child runs, interrupts are
// caught in this process so only the child dies and the caller carries on.
//
// Parameters:
//   - ctx: Context for cancellation; cancelling kills the child
//   - argv: Argument vector; argv[0] is the executable
//   - streams: Standard streams for the child
//
// Returns:
//   - int: Exit status of the child; -1 when it could not be launched
//   - error: Launch failure, or nil once the child has run
func (SystemRunner) Run(ctx context.Context, argv []string, streams Streams) (int, error) {
	if len(argv) == 0 || argv[0] == "" {
		return -1, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = orReader(streams.Stdin, os.Stdin)
	cmd.Stdout = orWriter(streams.Stdout, os.Stdout)
	cmd.Stderr = orWriter(streams.Stderr, os.Stderr)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitStatus(exitErr), nil
	}
	if ctx.Err() != nil {
		return -1, fmt.Errorf("%s: %w", argv[0], ctx.Err())
	}
	return -1, err
}

func orReader(r io.Reader, fallback *os.File) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w io.Writer, fallback *os.File) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
