package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure inside the wrapper itself.
	ExitFailure = 1

	// ExitUsage indicates invalid wrapper options.
	ExitUsage = 2

	// ExitSpawnFailure indicates the backend tool could not be started.
	// Matches the shell's "command not found" status.
	ExitSpawnFailure = 127
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (a backend's own code or one of the Exit* constants)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitUsage,
//	    Message: "unknown output format",
//	}
type ExitError struct {
	// Code is the exit code for the process.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// If err is a SpawnError, returns ExitSpawnFailure.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var spawnErr *SpawnError
	if errors.As(err, &spawnErr) {
		return ExitSpawnFailure
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// SpawnError reports that a backend tool could not be launched.
//
// The tool passed the probe (or was forced for a run) but starting the
// process failed, e.g. because PATH changed or the binary is not executable.
//
// Fields:
//   - Tool: The executable that failed to start (argv[0])
//   - Verb: The user-facing verb being dispatched (e.g. "install")
//   - Err: The error returned by the operating system
type SpawnError struct {
	Tool string
	Verb string
	Err  error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	if e.Verb == "" {
		return fmt.Sprintf("failed to launch %s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("failed to launch %s for %s: %v", e.Tool, e.Verb, e.Err)
}

// Unwrap returns the underlying launch error.
func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IsSpawnError checks if err is a SpawnError and returns it.
//
// Returns:
//   - *SpawnError: The SpawnError if err is one, nil otherwise
//   - bool: true if err is a SpawnError
func IsSpawnError(err error) (*SpawnError, bool) {
	var spawnErr *SpawnError
	if errors.As(err, &spawnErr) {
		return spawnErr, true
	}
	return nil, false
}
