package cmdexec

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
}

// TestSystemRunnerSuccess tests a command that exits zero and writes to stdout.
func TestSystemRunnerSuccess(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	code, err := SystemRunner{}.Run(context.Background(), []string{"sh", "-c", "echo hello"}, Streams{Stdout: &stdout})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

// TestSystemRunnerExitCode tests that a non-zero exit is a status, not an error.
func TestSystemRunnerExitCode(t *testing.T) {
	skipOnWindows(t)

	var stderr bytes.Buffer
	code, err := SystemRunner{}.Run(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 3"}, Streams{Stderr: &stderr})

	require.NoError(t, err)
	assert.Equal(t, 3, code)
	assert.Equal(t, "oops\n", stderr.String())
}

// TestSystemRunnerStdin tests that stdin is forwarded to the child.
func TestSystemRunnerStdin(t *testing.T) {
	skipOnWindows(t)

	var stdout bytes.Buffer
	code, err := SystemRunner{}.Run(context.Background(), []string{"sh", "-c", "read line; echo got:$line"}, Streams{
		Stdin:  strings.NewReader("yes\n"),
		Stdout: &stdout,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "got:yes\n", stdout.String())
}

// TestSystemRunnerSignal tests that a signal-terminated child reports 128+signal.
func TestSystemRunnerSignal(t *testing.T) {
	skipOnWindows(t)

	code, err := SystemRunner{}.Run(context.Background(), []string{"sh", "-c", "kill -TERM $$"}, Streams{})

	require.NoError(t, err)
	assert.Equal(t, 128+15, code)
}

// TestSystemRunnerLaunchFailure tests that a missing executable is an error.
// TestSystemRunnerSurvivesInterrupt tests that an interrupt sent while a
// child runs does not terminate the caller.
func TestSystemRunnerSurvivesInterrupt(t *testing.T) {
	skipOnWindows(t)

	code, err := SystemRunner{}.Run(context.Background(), []string{"sh", "-c", "kill -INT $PPID; sleep 1; exit 5"}, Streams{})

	require.NoError(t, err)
	assert.Equal(t, 5, code)
}

func TestSystemRunnerLaunchFailure(t *testing.T) {
	code, err := SystemRunner{}.Run(context.Background(), []string{"this_command_definitely_does_not_exist_12345"}, Streams{})

	require.Error(t, err)
	assert.Equal(t, -1, code)
}

// TestSystemRunnerEmpty tests rejection of an empty argv.
func TestSystemRunnerEmpty(t *testing.T) {
	for _, argv := range [][]string{nil, {}, {""}} {
		code, err := SystemRunner{}.Run(context.Background(), argv, Streams{})
		assert.ErrorIs(t, err, ErrEmptyCommand)
		assert.Equal(t, -1, code)
	}
}

// TestSystemRunnerCancelled tests that a cancelled context prevents the launch.
func TestSystemRunnerCancelled(t *testing.T) {
	skipOnWindows(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := SystemRunner{}.Run(ctx, []string{"sh", "-c", "exit 0"}, Streams{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, -1, code)
}

// TestRunnerFunc tests the function adapter.
func TestRunnerFunc(t *testing.T) {
	var got []string
	var r Runner = RunnerFunc(func(_ context.Context, argv []string, _ Streams) (int, error) {
		got = argv
		return 7, nil
	})

	code, err := r.Run(context.Background(), []string{"apt", "search", "vim"}, Streams{})

	require.NoError(t, err)
	assert.Equal(t, 7, code)
	assert.Equal(t, []string{"apt", "search", "vim"}, got)
}

// TestDefaultRunner tests that the package default spawns real processes.
func TestDefaultRunner(t *testing.T) {
	assert.IsType(t, SystemRunner{}, Default)
}
