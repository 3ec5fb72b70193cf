// Package command parses the spiv command grammar.
//
// A command is a single verb flag followed by at most two arguments:
//
//	-f <query>
//	-i <package> [/l[path]]
//	-u /a [/l[path]]
//	-u <package> [/l[path]]
//	-c | -h | -q
//
// Parsing is total: every input yields exactly one Result outcome.
package command

// Verb is the semantic action requested by the user.
type Verb int

const (
	// VerbNone is the zero value; it never appears in a request outcome.
	VerbNone Verb = iota
	// VerbSearch looks up packages matching a query.
	VerbSearch
	// VerbInstall installs a single package.
	VerbInstall
	// VerbUpgrade upgrades a single package.
	VerbUpgrade
	// VerbUpgradeAll upgrades every installed package.
	VerbUpgradeAll
	// VerbClearScreen clears the terminal.
	VerbClearScreen
	// VerbHelp prints the help message.
	VerbHelp
	// VerbQuit leaves the interactive loop.
	VerbQuit
)

var verbNames = map[Verb]string{
	VerbNone:        "none",
	VerbSearch:      "search",
	VerbInstall:     "install",
	VerbUpgrade:     "upgrade",
	VerbUpgradeAll:  "upgrade-all",
	VerbClearScreen: "clear",
	VerbHelp:        "help",
	VerbQuit:        "quit",
}

// String returns the lower-case name used in diagnostics and plan output.
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// Mutating reports whether the verb changes the installed package set.
func (v Verb) Mutating() bool {
	return v == VerbInstall || v == VerbUpgrade || v == VerbUpgradeAll
}

// NeedsBackend reports whether dispatching the verb requires a probed backend.
//
// ClearScreen depends only on the operating system; Help and Quit never spawn.
func (v Verb) NeedsBackend() bool {
	switch v {
	case VerbSearch, VerbInstall, VerbUpgrade, VerbUpgradeAll:
		return true
	default:
		return false
	}
}

// Request is a fully parsed command.
//
// Fields:
//   - Verb: The requested action
//   - Target: Package name or search query; empty for verbs without one
//   - Location: Install/upgrade location; meaningful only when HasLocation is set
//   - HasLocation: Whether a /l option was given
type Request struct {
	Verb        Verb
	Target      string
	Location    string
	HasLocation bool
}
