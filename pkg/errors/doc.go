// Package errors provides the error types and exit codes used by spiv.
//
// The package covers the failure kinds that outlive a single function call:
//   - ExitError: Command exit with a specific exit code
//   - SpawnError: A backend tool was reported present but could not be launched
//
// Parse errors and the "no supported package manager" condition are not
// errors in this sense. They print an informational line and the wrapper
// carries on, so they are modeled by the command and plan packages instead.
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The command (or its backend) succeeded
//   - ExitFailure (1): Generic failure
//   - ExitUsage (2): Invalid wrapper options such as an unknown --output value
//   - ExitSpawnFailure (127): The backend tool could not be launched
//
// A backend that ran and failed passes its own exit code through unchanged.
package errors
