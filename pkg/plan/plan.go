// Package plan maps a parsed command onto the argument vectors a backend
// understands.
//
// Build is a pure function of its inputs. It performs no I/O and consults
// no global state, so the same request and backend always produce the same
// plan. A location option is honored only by winget; the Linux backends have
// no equivalent and drop it.
package plan

import (
	"errors"
	"fmt"

	"github.com/ajxudir/spiv/pkg/backend"
	"github.com/ajxudir/spiv/pkg/command"
)

// EscalationTool is prepended to privileged steps on Linux backends.
const EscalationTool = "sudo"

// NoBackendMessage is printed when a verb needs a backend and none was found.
const NoBackendMessage = "No supported package manager found."

var (
	// ErrNoBackend is returned when a verb needs a backend and the tag is None.
	ErrNoBackend = errors.New(NoBackendMessage)

	// ErrNotExecutable is returned for verbs handled without spawning (help, quit).
	ErrNotExecutable = errors.New("verb does not spawn a process")
)

// Step is one argument vector; Argv[0] is the executable.
type Step struct {
	Argv []string
}

// Tool returns the backend tool run by the step, skipping the escalation helper.
func (s Step) Tool() string {
	if len(s.Argv) > 1 && s.Argv[0] == EscalationTool {
		return s.Argv[1]
	}
	if len(s.Argv) > 0 {
		return s.Argv[0]
	}
	return ""
}

// Plan is the fully resolved command for one dispatch.
//
// Fields:
//   - Verb: The verb the plan executes
//   - Backend: The backend the plan targets
//   - Steps: Argument vectors, run in order; only apt upgrade-all has two
//   - NeedsPrivilege: Whether the steps are run through sudo
type Plan struct {
	Verb           command.Verb
	Backend        backend.Tag
	Steps          []Step
	NeedsPrivilege bool
}

// BackendName returns the human-readable backend name.
func (p Plan) BackendName() string {
	return p.Backend.String()
}

// Build produces the plan for req on the given backend.
//
// Parameters:
//   - req: A parsed request (command.OutcomeRequest)
//   - tag: The backend selected by the probe
//
// Returns:
//   - Plan: The argument vectors to execute
//   - error: ErrNoBackend when tag is None for a backend verb;
//     ErrNotExecutable for help and quit
func Build(req command.Request, tag backend.Tag) (Plan, error) {
	switch req.Verb {
	case command.VerbHelp, command.VerbQuit:
		return Plan{}, fmt.Errorf("%s: %w", req.Verb, ErrNotExecutable)
	case command.VerbClearScreen:
		return single(req.Verb, tag, false, clearArgv(tag)), nil
	case command.VerbNone:
		return Plan{}, fmt.Errorf("empty request: %w", ErrNotExecutable)
	}

	switch tag {
	case backend.WindowsNative:
		return buildWinget(req), nil
	case backend.Apt:
		return buildApt(req), nil
	case backend.Dnf:
		return buildDnf(req), nil
	case backend.Pacman:
		return buildPacman(req), nil
	case backend.None:
		return Plan{}, ErrNoBackend
	default:
		return Plan{}, fmt.Errorf("unsupported backend %s", tag)
	}
}

func clearArgv(tag backend.Tag) []string {
	if tag == backend.WindowsNative {
		return []string{"cmd", "/C", "cls"}
	}
	return []string{"clear"}
}

func buildWinget(req command.Request) Plan {
	const tool = "winget"

	var argv []string
	switch req.Verb {
	case command.VerbSearch:
		return single(req.Verb, backend.WindowsNative, false, []string{tool, "search", req.Target})
	case command.VerbInstall:
		argv = []string{tool, "install", req.Target}
	case command.VerbUpgrade:
		argv = []string{tool, "upgrade", req.Target}
	case command.VerbUpgradeAll:
		argv = []string{tool, "upgrade", "--all"}
	}
	if req.HasLocation {
		argv = append(argv, "--location", req.Location)
	}
	return single(req.Verb, backend.WindowsNative, false, argv)
}

func buildApt(req command.Request) Plan {
	const tool = "apt"

	switch req.Verb {
	case command.VerbSearch:
		return linux(req.Verb, backend.Apt, []string{tool, "search", req.Target})
	case command.VerbInstall:
		return linux(req.Verb, backend.Apt, []string{tool, "install", "-y", req.Target})
	case command.VerbUpgrade:
		return linux(req.Verb, backend.Apt, []string{tool, "install", "--only-upgrade", req.Target})
	default:
		return linux(req.Verb, backend.Apt,
			[]string{tool, "update"},
			[]string{tool, "upgrade", "-y"},
		)
	}
}

func buildDnf(req command.Request) Plan {
	const tool = "dnf"

	switch req.Verb {
	case command.VerbSearch:
		return linux(req.Verb, backend.Dnf, []string{tool, "search", req.Target})
	case command.VerbInstall:
		return linux(req.Verb, backend.Dnf, []string{tool, "install", "-y", req.Target})
	case command.VerbUpgrade:
		return linux(req.Verb, backend.Dnf, []string{tool, "upgrade", "-y", req.Target})
	default:
		return linux(req.Verb, backend.Dnf, []string{tool, "upgrade", "-y"})
	}
}

func buildPacman(req command.Request) Plan {
	const tool = "pacman"

	switch req.Verb {
	case command.VerbSearch:
		return linux(req.Verb, backend.Pacman, []string{tool, "-Ss", req.Target})
	case command.VerbInstall, command.VerbUpgrade:
		return linux(req.Verb, backend.Pacman, []string{tool, "-S", "--noconfirm", req.Target})
	default:
		return linux(req.Verb, backend.Pacman, []string{tool, "-Syu", "--noconfirm"})
	}
}

func single(verb command.Verb, tag backend.Tag, needsPrivilege bool, argv []string) Plan {
	return Plan{
		Verb:           verb,
		Backend:        tag,
		Steps:          []Step{{Argv: argv}},
		NeedsPrivilege: needsPrivilege,
	}
}

// linux builds a plan for a Linux backend. Steps of a mutating verb each
// run through the escalation tool.
func linux(verb command.Verb, tag backend.Tag, argvs ...[]string) Plan {
	escalate := verb.Mutating()
	steps := make([]Step, 0, len(argvs))
	for _, argv := range argvs {
		if escalate {
			argv = append([]string{EscalationTool}, argv...)
		}
		steps = append(steps, Step{Argv: argv})
	}
	return Plan{
		Verb:           verb,
		Backend:        tag,
		Steps:          steps,
		NeedsPrivilege: escalate,
	}
}
