package command

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// helpEntry is one row of the help table.
type helpEntry struct {
	usage       string
	description string
}

var helpEntries = []helpEntry{
	{"-f <search_term>", "Search for a package"},
	{"-i <package_name> [/l[path]]", "Install a package"},
	{"-u <package_name> [/l[path]]", "Upgrade a single package"},
	{"-u /a [/l[path]]", "Upgrade all packages"},
	{"-c", "Clear screen"},
	{"-h", "Show help"},
	{"-q", "Quit (interactive mode)"},
}

var helpNotes = []string{
	"/l        installs into the current directory",
	"/l<path>  installs into <path>",
	"The location option only applies to MSI-style installs on Windows (winget);",
	"it is ignored by apt, dnf and pacman.",
}

// HelpText returns the help message listing every recognized token.
func HelpText() string {
	width := 0
	for _, e := range helpEntries {
		width = max(width, runewidth.StringWidth(e.usage))
	}

	var sb strings.Builder
	sb.WriteString("Welcome to spiv\n")
	sb.WriteString("Commands:\n")
	for _, e := range helpEntries {
		sb.WriteString(padRight(e.usage, width+2))
		sb.WriteString("| ")
		sb.WriteString(e.description)
		sb.WriteString("\n")
	}
	sb.WriteString("\nLocation option:\n")
	for _, n := range helpNotes {
		sb.WriteString("  ")
		sb.WriteString(n)
		sb.WriteString("\n")
	}
	return sb.String()
}

// padRight pads val with spaces to the given display width.
//
// Width is measured in terminal cells, so wide characters count double.
func padRight(val string, width int) string {
	current := runewidth.StringWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}
