package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/spiv/pkg/backend"
	"github.com/ajxudir/spiv/pkg/command"
	"github.com/ajxudir/spiv/pkg/plan"
)

func aptUpgradeAll(t *testing.T) plan.Plan {
	t.Helper()
	p, err := plan.Build(command.Request{Verb: command.VerbUpgradeAll}, backend.Apt)
	require.NoError(t, err)
	return p
}

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Empty input selects text
//   - Unknown formats are rejected
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"TEXT", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{" Yaml ", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}

	_, err := ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

// TestWritePlanText tests the text rendering of a two-step plan.
func TestWritePlanText(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf)

	require.NoError(t, f.WritePlan(aptUpgradeAll(t)))

	assert.Equal(t, "sudo apt update\nsudo apt upgrade -y\n", buf.String())
}

// TestWritePlanJSON tests that JSON output round-trips into PlanView.
func TestWritePlanJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON, &buf).WritePlan(aptUpgradeAll(t)))

	var got PlanView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "upgrade-all", got.Verb)
	assert.Equal(t, "apt", got.Tool)
	assert.True(t, got.NeedsPrivilege)
	assert.Equal(t, [][]string{{"sudo", "apt", "update"}, {"sudo", "apt", "upgrade", "-y"}}, got.Steps)
	assert.Contains(t, buf.String(), `"needs_privilege":true`)
}

// TestWritePlanYAML tests YAML output for a winget plan.
func TestWritePlanYAML(t *testing.T) {
	req := command.Request{Verb: command.VerbInstall, Target: "notepadpp", Location: "/tmp/apps", HasLocation: true}
	p, err := plan.Build(req, backend.WindowsNative)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML, &buf).WritePlan(p))

	var got PlanView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "install", got.Verb)
	assert.Equal(t, "winget", got.Tool)
	assert.False(t, got.NeedsPrivilege)
	assert.Equal(t, [][]string{{"winget", "install", "notepadpp", "--location", "/tmp/apps"}}, got.Steps)
	assert.Contains(t, buf.String(), "needs_privilege: false")
}

// TestNewPlanViewCopies tests that the view does not alias plan storage.
func TestNewPlanViewCopies(t *testing.T) {
	p := aptUpgradeAll(t)
	view := NewPlanView(p)
	view.Steps[0][0] = "doas"

	assert.Equal(t, "sudo", p.Steps[0].Argv[0])
}

// TestShellJoin tests quoting of arguments.
func TestShellJoin(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{name: "plain", argv: []string{"apt", "search", "vim"}, want: "apt search vim"},
		{name: "space", argv: []string{"winget", "install", "--location", `C:\Program Files`}, want: `winget install --location 'C:\Program Files'`},
		{name: "empty arg", argv: []string{"dnf", "search", ""}, want: "dnf search ''"},
		{name: "single quote", argv: []string{"echo", "it's"}, want: `echo "it's"`},
		{name: "glob", argv: []string{"pacman", "-Ss", "py*"}, want: "pacman -Ss 'py*'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShellJoin(tt.argv))
		})
	}
}
