package warnings

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSetWarningWriterRestoresAndCaptures tests the behavior of SetWarningWriter.
//
// It verifies:
//   - Original writer is restored after calling restore function
//   - Warning messages are captured by the new writer
//   - nil writer defaults to os.Stderr
func TestSetWarningWriterRestoresAndCaptures(t *testing.T) {
	original := warnWriter

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	Warnf("binary built for %s", "windows/arm")
	restore()

	assert.Equal(t, original, warnWriter)
	assert.Equal(t, "Warning: binary built for windows/arm\n", buf.String())

	restore = SetWarningWriter(nil)
	assert.Equal(t, os.Stderr, WarningWriter())
	restore()
	assert.Equal(t, original, warnWriter)
}

// TestWarnfTrailingNewline tests that a trailing newline is not doubled.
func TestWarnfTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	defer SetWarningWriter(&buf)()

	Warnf("first\n")
	Warnf("second")

	assert.Equal(t, "Warning: first\nWarning: second\n", buf.String())
}

// TestWarningWriterReturnsCurrent tests the behavior of WarningWriter.
func TestWarningWriterReturnsCurrent(t *testing.T) {
	original := warnWriter
	assert.Equal(t, original, WarningWriter())

	var buf bytes.Buffer
	restore := SetWarningWriter(&buf)
	assert.Equal(t, &buf, WarningWriter())
	restore()

	assert.Equal(t, original, WarningWriter())
}
