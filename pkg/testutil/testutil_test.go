package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/spiv/pkg/cmdexec"
)

// TestRecorder tests scripted results and argv capture.
//
// It verifies:
//   - Results are consumed in order
//   - Exhausted results default to status 0
//   - Recorded argv is a copy of the caller's slice
func TestRecorder(t *testing.T) {
	launchErr := errors.New("no such file")
	rec := &Recorder{Results: []Result{{Code: 100}, {Code: -1, Err: launchErr}}}
	var runner cmdexec.Runner = rec

	argv := []string{"sudo", "apt", "update"}
	code, err := runner.Run(context.Background(), argv, cmdexec.Streams{})
	assert.NoError(t, err)
	assert.Equal(t, 100, code)

	code, err = runner.Run(context.Background(), []string{"apt", "search", "x"}, cmdexec.Streams{})
	assert.ErrorIs(t, err, launchErr)
	assert.Equal(t, -1, code)

	code, err = runner.Run(context.Background(), []string{"clear"}, cmdexec.Streams{})
	assert.NoError(t, err)
	assert.Equal(t, 0, code)

	argv[0] = "changed"
	assert.Equal(t, [][]string{
		{"sudo", "apt", "update"},
		{"apt", "search", "x"},
		{"clear"},
	}, rec.Argvs())
}
