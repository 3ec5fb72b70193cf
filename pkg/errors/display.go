package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// PrintError prints a single error with an actionable hint to the writer.
//
// This is the single implementation for error display across spiv. The
// "Error:" label is colored only when w is a terminal.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - err: The error to display; nil prints nothing
//
// Output format:
//
//	Error: <error message>
//	  Hint: <actionable hint if available>
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", label(w, "Error:"), err.Error())
	if hint := GetHint(err); hint != "" {
		_, _ = fmt.Fprintf(w, "  Hint: %s\n", hint)
	}
}

// GetHint returns an actionable hint for known error kinds, or "".
func GetHint(err error) string {
	if se, ok := IsSpawnError(err); ok {
		return fmt.Sprintf("Ensure '%s' is installed and available in your PATH.", se.Tool)
	}
	return ""
}

// label renders text in the error color when w is a terminal.
func label(w io.Writer, text string) string {
	if !IsTerminal(w) {
		return text
	}
	return color.Error.Sprint(text)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
