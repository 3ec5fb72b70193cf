// Package dispatch ties the parser, probe, builder and runner together.
//
// A dispatch runs its stages in strict order: parse, probe, build, spawn,
// wait. Nothing is carried from one dispatch to the next; the backend is
// probed again every time.
package dispatch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ajxudir/spiv/pkg/backend"
	"github.com/ajxudir/spiv/pkg/cmdexec"
	"github.com/ajxudir/spiv/pkg/command"
	"github.com/ajxudir/spiv/pkg/errors"
	"github.com/ajxudir/spiv/pkg/output"
	"github.com/ajxudir/spiv/pkg/plan"
	"github.com/ajxudir/spiv/pkg/verbose"
)

// Mode selects one-shot or interactive semantics.
type Mode int

const (
	// OneShot runs a single command taken from the program arguments.
	OneShot Mode = iota
	// Interactive reads commands from standard input until -q or EOF.
	Interactive
)

// Status is the result of one dispatch.
//
// Fields:
//   - Code: Exit status (the backend's, or one of the errors.Exit* codes)
//   - Quit: The user asked to leave the interactive loop
//   - Err: Spawn or output failure, already reported to Stderr
type Status struct {
	Code int
	Quit bool
	Err  error
}

// Dispatcher runs commands against the host package manager.
type Dispatcher struct {
	runner         cmdexec.Runner
	detect         func() backend.Tag
	goos           string
	workingDir     command.WorkingDirFunc
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	abortOnFailure bool
	dryRun         bool
	format         output.Format
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRunner sets the process runner.
func WithRunner(r cmdexec.Runner) Option {
	return func(d *Dispatcher) { d.runner = r }
}

// WithDetector sets the backend probe.
func WithDetector(detect func() backend.Tag) Option {
	return func(d *Dispatcher) { d.detect = detect }
}

// WithBackend skips probing and always targets tag.
func WithBackend(tag backend.Tag) Option {
	return func(d *Dispatcher) { d.detect = func() backend.Tag { return tag } }
}

// WithGOOS sets the operating system used for the clear-screen command.
func WithGOOS(goos string) Option {
	return func(d *Dispatcher) { d.goos = goos }
}

// WithWorkingDir sets the resolver used for a bare /l option.
func WithWorkingDir(wd command.WorkingDirFunc) Option {
	return func(d *Dispatcher) { d.workingDir = wd }
}

// WithStreams sets the standard streams; nil values keep the defaults.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(d *Dispatcher) {
		if stdin != nil {
			d.stdin = stdin
		}
		if stdout != nil {
			d.stdout = stdout
		}
		if stderr != nil {
			d.stderr = stderr
		}
	}
}

// WithAbortOnFailure stops a multi-step plan at the first failing step.
func WithAbortOnFailure(abort bool) Option {
	return func(d *Dispatcher) { d.abortOnFailure = abort }
}

// WithDryRun prints plans in the given format instead of running them.
func WithDryRun(format output.Format) Option {
	return func(d *Dispatcher) {
		d.dryRun = true
		d.format = format
	}
}

// New returns a Dispatcher for the running host, adjusted by opts.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		runner:     cmdexec.Default,
		detect:     backend.Detect,
		goos:       runtime.GOOS,
		workingDir: os.Getwd,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		format:     output.FormatText,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch parses tokens and executes the resulting command.
//
// Parse failures and a missing backend print an informational line and
// return status 0. A spawn failure is reported to stderr and returns
// errors.ExitSpawnFailure. Otherwise the status is the backend's.
//
// Parameters:
//   - ctx: Context for cancellation of spawned processes
//   - tokens: The command tokens, verb flag first
//   - mode: OneShot ignores -q; Interactive turns it into Status.Quit
//
// Returns:
//   - Status: Exit status and quit request
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string, mode Mode) Status {
	res := command.Parse(tokens, d.workingDir)
	if res.Outcome != command.OutcomeRequest {
		verbose.Debugf("Parse: %q rejected", tokens)
		d.println(res.Message)
		return Status{}
	}

	req := res.Request
	switch req.Verb {
	case command.VerbHelp:
		_, _ = fmt.Fprint(d.stdout, command.HelpText())
		return Status{}
	case command.VerbQuit:
		if mode == Interactive {
			return Status{Quit: true}
		}
		verbose.Debugf("Parse: -q ignored in one-shot mode")
		return Status{}
	}

	tag := d.backendFor(req.Verb)
	if req.HasLocation && tag.IsLinux() {
		verbose.Debugf("Plan: location %q ignored, %s has no install location option", req.Location, tag.Tool())
	}

	p, err := plan.Build(req, tag)
	if err != nil {
		if stderrors.Is(err, plan.ErrNoBackend) {
			d.println(plan.NoBackendMessage)
			d.logHints()
			return Status{}
		}
		errors.PrintError(d.stderr, err)
		return Status{Code: errors.ExitFailure, Err: err}
	}

	if d.dryRun {
		if err := output.NewFormatter(d.format, d.stdout).WritePlan(p); err != nil {
			errors.PrintError(d.stderr, err)
			return Status{Code: errors.ExitFailure, Err: err}
		}
		return Status{}
	}

	return d.execute(ctx, p)
}

// backendFor returns the backend a verb is built against.
//
// Clearing the screen only depends on the operating system, so it never
// triggers a probe.
func (d *Dispatcher) backendFor(verb command.Verb) backend.Tag {
	if verb.NeedsBackend() {
		return d.detect()
	}
	if d.goos == "windows" {
		return backend.WindowsNative
	}
	return backend.None
}

// execute runs the plan's steps in order.
//
// The returned code is the first non-zero step status. Later steps still
// run after a failure unless abortOnFailure is set; a step that cannot be
// launched always ends the plan.
func (d *Dispatcher) execute(ctx context.Context, p plan.Plan) Status {
	streams := cmdexec.Streams{Stdin: d.stdin, Stdout: d.stdout, Stderr: d.stderr}
	verbose.Debugf("Dispatch: %s via %s (privileged: %t)", p.Verb, p.BackendName(), p.NeedsPrivilege)

	status := Status{}
	for i, step := range p.Steps {
		verbose.CommandExec(step.Argv, i+1, len(p.Steps))

		code, err := d.runner.Run(ctx, step.Argv, streams)
		if err != nil {
			spawnErr := &errors.SpawnError{Tool: step.Argv[0], Verb: p.Verb.String(), Err: err}
			errors.PrintError(d.stderr, spawnErr)
			return Status{Code: errors.ExitSpawnFailure, Err: spawnErr}
		}
		verbose.CommandResult(step.Argv, code)

		if code == 0 {
			continue
		}
		if status.Code == 0 {
			status.Code = code
		}
		if d.abortOnFailure && i < len(p.Steps)-1 {
			verbose.Debugf("Dispatch: step %d failed, skipping %d remaining", i+1, len(p.Steps)-i-1)
			break
		}
	}
	return status
}

// logHints prints installation hints for every backend when verbose is on.
func (d *Dispatcher) logHints() {
	if !verbose.IsEnabled() {
		return
	}
	for _, tag := range []backend.Tag{backend.Apt, backend.Dnf, backend.Pacman} {
		verbose.Tracef("%s: %s", tag.Tool(), backend.ResolutionHint(tag))
	}
}

func (d *Dispatcher) println(msg string) {
	_, _ = fmt.Fprintln(d.stdout, msg)
}
