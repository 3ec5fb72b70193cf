package command

import (
	"fmt"
	"os"
	"strings"
)

// Verb flags recognized by the parser.
const (
	FlagSearch  = "-f"
	FlagInstall = "-i"
	FlagUpgrade = "-u"
	FlagClear   = "-c"
	FlagHelp    = "-h"
	FlagQuit    = "-q"

	// AllMarker selects every installed package for -u.
	AllMarker = "/a"
	// LocationPrefix starts the location option; a bare "/l" means the working directory.
	LocationPrefix = "/l"
)

// Messages printed for parse failures.
const (
	UnknownMessage      = "Unknown command. Use -h for help."
	SearchUsage         = "Usage: -f <search_term>"
	InstallUsage        = "Usage: -i <package_name> [/l[path]]"
	UpgradeUsage        = "Usage: -u /a [/l[path]]  (all)  OR  -u <package_name> [/l[path]]"
	locationErrorFormat = "Cannot resolve current directory for /l: %v"
)

// Outcome classifies a parse Result.
type Outcome int

const (
	// OutcomeRequest means Request holds a recognized, fully populated command.
	OutcomeRequest Outcome = iota
	// OutcomeUsage means a recognized verb was missing a required argument.
	OutcomeUsage
	// OutcomeUnknown means the verb flag was missing or not recognized.
	OutcomeUnknown
)

// Result is the outcome of parsing one command line.
//
// Exactly one of the following holds:
//   - Outcome == OutcomeRequest and Request is populated
//   - Outcome == OutcomeUsage and Message holds the verb's usage line
//   - Outcome == OutcomeUnknown and Message holds UnknownMessage
type Result struct {
	Outcome Outcome
	Request Request
	Message string
}

// WorkingDirFunc resolves the current working directory for a bare /l.
type WorkingDirFunc func() (string, error)

// ParseLine splits a raw input line on whitespace and parses the tokens.
//
// Parameters:
//   - line: A single command line as typed by the user
//   - wd: Working directory resolver; nil uses os.Getwd
//
// Returns:
//   - Result: Exactly one of request, usage, or unknown outcome
func ParseLine(line string, wd WorkingDirFunc) Result {
	return Parse(strings.Fields(line), wd)
}

// Parse interprets pre-split tokens.
//
// The first token is the verb flag, the second the primary argument and the
// third, if it starts with /l, the location option. Tokens past the third
// are ignored, as is a third token that is not a location.
//
// Parameters:
//   - tokens: Whitespace-separated tokens
//   - wd: Working directory resolver; nil uses os.Getwd
//
// Returns:
//   - Result: Exactly one of request, usage, or unknown outcome
func Parse(tokens []string, wd WorkingDirFunc) Result {
	if wd == nil {
		wd = os.Getwd
	}
	if len(tokens) == 0 {
		return unknown()
	}

	arg := ""
	if len(tokens) > 1 {
		arg = tokens[1]
	}

	switch tokens[0] {
	case FlagSearch:
		if arg == "" {
			return usage(SearchUsage)
		}
		return request(Request{Verb: VerbSearch, Target: arg})

	case FlagInstall:
		if arg == "" {
			return usage(InstallUsage)
		}
		return withLocation(Request{Verb: VerbInstall, Target: arg}, tokens, wd)

	case FlagUpgrade:
		switch arg {
		case "":
			return usage(UpgradeUsage)
		case AllMarker:
			return withLocation(Request{Verb: VerbUpgradeAll}, tokens, wd)
		default:
			return withLocation(Request{Verb: VerbUpgrade, Target: arg}, tokens, wd)
		}

	case FlagClear:
		return request(Request{Verb: VerbClearScreen})
	case FlagHelp:
		return request(Request{Verb: VerbHelp})
	case FlagQuit:
		return request(Request{Verb: VerbQuit})
	}

	return unknown()
}

// withLocation attaches the optional third-token /l option to req.
func withLocation(req Request, tokens []string, wd WorkingDirFunc) Result {
	if len(tokens) < 3 || !strings.HasPrefix(tokens[2], LocationPrefix) {
		return request(req)
	}

	path := strings.TrimPrefix(tokens[2], LocationPrefix)
	if path == "" {
		dir, err := wd()
		if err != nil {
			return usage(fmt.Sprintf(locationErrorFormat, err))
		}
		path = dir
	}

	req.Location = path
	req.HasLocation = true
	return request(req)
}

func request(req Request) Result {
	return Result{Outcome: OutcomeRequest, Request: req}
}

func usage(msg string) Result {
	return Result{Outcome: OutcomeUsage, Message: msg}
}

func unknown() Result {
	return Result{Outcome: OutcomeUnknown, Message: UnknownMessage}
}
