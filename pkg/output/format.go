// Package output renders command plans for --dry-run.
// It supports a plain text form plus JSON and YAML for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/spiv/pkg/plan"
)

// Format represents the output format type.
type Format string

const (
	// FormatText prints one shell-style line per step.
	FormatText Format = "text"
	// FormatJSON outputs the plan as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs the plan as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. An empty string selects FormatText.
//
// Parameters:
//   - s: Format string to parse (e.g., "json", "YAML")
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no supported format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// PlanView is the serialized form of a plan.
type PlanView struct {
	Verb           string     `json:"verb" yaml:"verb"`
	Backend        string     `json:"backend" yaml:"backend"`
	Tool           string     `json:"tool" yaml:"tool"`
	NeedsPrivilege bool       `json:"needs_privilege" yaml:"needs_privilege"`
	Steps          [][]string `json:"steps" yaml:"steps"`
}

// NewPlanView converts a plan into its serialized form.
func NewPlanView(p plan.Plan) PlanView {
	view := PlanView{
		Verb:           p.Verb.String(),
		Backend:        p.BackendName(),
		Tool:           p.Backend.Tool(),
		NeedsPrivilege: p.NeedsPrivilege,
		Steps:          make([][]string, 0, len(p.Steps)),
	}
	for _, s := range p.Steps {
		view.Steps = append(view.Steps, append([]string(nil), s.Argv...))
	}
	return view
}

// Formatter handles writing plans in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// WritePlan writes p in the formatter's format.
//
// Returns:
//   - error: When encoding or writing fails
func (f *Formatter) WritePlan(p plan.Plan) error {
	view := NewPlanView(p)
	switch f.format {
	case FormatJSON:
		return f.WriteJSON(view)
	case FormatYAML:
		return f.WriteYAML(view)
	default:
		return f.WriteText(view)
	}
}

// WriteJSON writes data as compact JSON to the output writer.
//
// The output is compact (single line) for easy parsing by tools.
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(data)
}

// WriteYAML writes data as a YAML document with 2-space indentation.
func (f *Formatter) WriteYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// WriteText writes each step on its own line, privileged steps included
// verbatim so the output can be pasted into a shell.
func (f *Formatter) WriteText(view PlanView) error {
	for _, argv := range view.Steps {
		if _, err := fmt.Fprintln(f.writer, ShellJoin(argv)); err != nil {
			return err
		}
	}
	return nil
}

// ShellJoin joins argv into a single line, quoting arguments a POSIX shell
// would otherwise split or expand.
func ShellJoin(argv []string) string {
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = shellQuote(a)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.ContainsAny(s, " \t\n'\"\\$`*?[]{}()<>|&;#~!") {
		if !strings.Contains(s, "'") {
			return "'" + s + "'"
		}
		return strconv.Quote(s)
	}
	return s
}
