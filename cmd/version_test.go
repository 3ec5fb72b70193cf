package cmd

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrintVersionOutput tests the behavior of printVersionOutput.
//
// It verifies:
//   - Basic version output includes version, Go version, and build info
//   - Build time and git commit are printed when set
//   - Development builds are labeled
func TestPrintVersionOutput(t *testing.T) {
	oldVersion, oldBuildTime, oldGitCommit := Version, BuildTime, GitCommit
	oldBuildOS, oldBuildArch := BuildOS, BuildArch
	defer func() {
		Version, BuildTime, GitCommit = oldVersion, oldBuildTime, oldGitCommit
		BuildOS, BuildArch = oldBuildOS, oldBuildArch
	}()

	t.Run("basic version output", func(t *testing.T) {
		Version, BuildTime, GitCommit, BuildOS, BuildArch = "1.0.0", "", "", "", ""

		var buf bytes.Buffer
		printVersionOutput(&buf)

		out := buf.String()
		assert.Contains(t, out, "Version: 1.0.0\n")
		assert.Contains(t, out, "Go:")
		assert.Contains(t, out, "Build:   "+runtime.GOOS+"/"+runtime.GOARCH)
		assert.NotContains(t, out, "Runtime:")
		assert.NotContains(t, out, "Date:")
	})

	t.Run("full metadata", func(t *testing.T) {
		Version, BuildTime, GitCommit = "1.2.3", "2026-01-01T00:00:00Z", "abc1234"

		var buf bytes.Buffer
		printVersionOutput(&buf)

		assert.Contains(t, buf.String(), "Date:    2026-01-01T00:00:00Z")
		assert.Contains(t, buf.String(), "Git:     abc1234")
	})

	t.Run("dev build", func(t *testing.T) {
		Version = "dev"

		var buf bytes.Buffer
		printVersionOutput(&buf)

		assert.Contains(t, buf.String(), "Version: dev (development build)")
	})

	t.Run("cross build shows runtime", func(t *testing.T) {
		Version, BuildOS, BuildArch = "1.0.0", "plan9", "mips"

		var buf bytes.Buffer
		printVersionOutput(&buf)

		assert.Contains(t, buf.String(), "Build:   plan9/mips")
		assert.Contains(t, buf.String(), "Runtime: "+runtime.GOOS+"/"+runtime.GOARCH)
	})
}

// TestArchMismatch tests mismatch detection and its warning.
func TestArchMismatch(t *testing.T) {
	oldBuildOS, oldBuildArch := BuildOS, BuildArch
	defer func() { BuildOS, BuildArch = oldBuildOS, oldBuildArch }()

	BuildOS, BuildArch = "", ""
	assert.False(t, HasArchMismatch())
	assert.Empty(t, GetArchMismatchWarning())

	BuildOS, BuildArch = runtime.GOOS, runtime.GOARCH
	assert.False(t, HasArchMismatch())

	BuildOS, BuildArch = "windows", "arm"
	if runtime.GOOS == "windows" && runtime.GOARCH == "arm" {
		t.Skip("running on the mismatch target")
	}
	assert.True(t, HasArchMismatch())
	assert.Contains(t, GetArchMismatchWarning(), "binary built for windows/arm")
}

// TestVersionHelpers tests GetVersion and IsDevBuild.
func TestVersionHelpers(t *testing.T) {
	oldVersion := Version
	defer func() { Version = oldVersion }()

	Version = "dev"
	assert.Equal(t, "dev", GetVersion())
	assert.True(t, IsDevBuild())

	Version = "2.0.0"
	assert.False(t, IsDevBuild())
}
