// Package cmd implements the command-line interface for spiv.
// It maps one small flag vocabulary onto winget, apt, dnf or pacman.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajxudir/spiv/pkg/backend"
	"github.com/ajxudir/spiv/pkg/cmdexec"
	"github.com/ajxudir/spiv/pkg/command"
	"github.com/ajxudir/spiv/pkg/dispatch"
	"github.com/ajxudir/spiv/pkg/errors"
	"github.com/ajxudir/spiv/pkg/output"
	"github.com/ajxudir/spiv/pkg/verbose"
	"github.com/ajxudir/spiv/pkg/warnings"
)

var exitFunc = os.Exit

// Process dependencies, replaced in tests.
var (
	runner   cmdexec.Runner = cmdexec.Default
	detector                = backend.Detect
)

var (
	verboseFlag        bool
	versionFlag        bool
	helpFlag           bool
	dryRunFlag         bool
	abortOnFailureFlag bool
	outputFlag         string
	backendFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "spiv [options] [-f <query> | -i <package> [/l[path]] | -u /a|<package> [/l[path]] | -c | -h | -q]",
	Short: "One command vocabulary for winget, apt, dnf and pacman",
	Long: `Search, install and upgrade packages with the host's native package manager.

Without a command spiv starts an interactive prompt. Options use the long
"--name" form so they never clash with the single-dash command flags.`,
	// The command grammar uses single-dash flags that take positional
	// arguments; they are parsed by the command package, not pflag.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success, informational output, or nothing to do
//   - 2: Invalid wrapper options
//   - 127: The backend tool could not be launched
//   - anything else: the backend's own exit status
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		if !isSilent(err) {
			errors.PrintError(rootCmd.ErrOrStderr(), err)
		}
		verbose.Debugf("Exit code %d", code)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (runRoot -> resetFlags -> rootCmd).
	rootCmd.RunE = runRoot

	flags := rootCmd.Flags()
	flags.BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	flags.BoolVar(&versionFlag, "version", false, "Show version information")
	flags.BoolVar(&helpFlag, "help", false, "Show help for spiv")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "Print the command plan instead of running it")
	flags.StringVar(&outputFlag, "output", "text", "Plan format for --dry-run: text, json or yaml")
	flags.StringVar(&backendFlag, "backend", "", "Force a backend for --dry-run: winget, apt, dnf or pacman")
	flags.BoolVar(&abortOnFailureFlag, "abort-on-failure", false, "Stop a multi-step plan at the first failing step")
}

// runRoot parses the wrapper options and hands the rest to the dispatcher.
//
// With no command tokens left spiv runs interactively; otherwise it runs
// the single command and exits with the backend's status.
func runRoot(cmd *cobra.Command, args []string) error {
	defer resetFlags()

	opts, rest := splitArgs(cmd, args)
	if err := cmd.Flags().Parse(opts); err != nil {
		return errors.NewExitError(errors.ExitUsage, err)
	}

	if verboseFlag {
		verbose.Enable()
	}
	if msg := GetArchMismatchWarning(); msg != "" {
		defer warnings.SetWarningWriter(cmd.ErrOrStderr())()
		warnings.Warnf("%s", msg)
	}
	if versionFlag {
		printVersionOutput(cmd.OutOrStdout())
		return nil
	}
	if helpFlag {
		printHelp(cmd)
		return nil
	}

	dispatchOpts, err := dispatcherOptions(cmd)
	if err != nil {
		return err
	}
	d := dispatch.New(dispatchOpts...)

	var code int
	if len(rest) == 0 {
		verbose.Debugf("Mode: interactive")
		code = d.RunInteractive(cmd.Context())
	} else {
		verbose.Debugf("Mode: one-shot %q", rest)
		code = d.RunOneShot(cmd.Context(), rest)
	}

	if code != errors.ExitSuccess {
		return errors.NewExitError(code, nil)
	}
	return nil
}

// dispatcherOptions translates the wrapper flags into dispatcher options.
func dispatcherOptions(cmd *cobra.Command) ([]dispatch.Option, error) {
	opts := []dispatch.Option{
		dispatch.WithRunner(runner),
		dispatch.WithDetector(detector),
		dispatch.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		dispatch.WithAbortOnFailure(abortOnFailureFlag),
	}

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitUsage, err)
	}
	if cmd.Flags().Changed("output") && !dryRunFlag {
		return nil, errors.NewExitErrorf(errors.ExitUsage, "--output requires --dry-run")
	}
	if dryRunFlag {
		opts = append(opts, dispatch.WithDryRun(format))
	}

	if backendFlag != "" {
		if !dryRunFlag {
			return nil, errors.NewExitErrorf(errors.ExitUsage, "--backend requires --dry-run")
		}
		tag, err := backend.ParseTag(backendFlag)
		if err != nil {
			return nil, errors.NewExitError(errors.ExitUsage, err)
		}
		opts = append(opts, dispatch.WithBackend(tag))
		if tag == backend.WindowsNative {
			opts = append(opts, dispatch.WithGOOS("windows"))
		}
	}

	return opts, nil
}

// splitArgs separates leading "--name" wrapper options from the command.
//
// Options must come before the command tokens. A lone "--" ends the options.
// Options that take a value consume the following token unless written as
// --name=value.
func splitArgs(cmd *cobra.Command, args []string) (opts, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return opts, args[i+1:]
		}
		if !strings.HasPrefix(arg, "--") {
			return opts, args[i:]
		}

		opts = append(opts, arg)
		name := strings.TrimPrefix(arg, "--")
		if strings.Contains(name, "=") {
			continue
		}
		if f := cmd.Flags().Lookup(name); f != nil && f.Value.Type() != "bool" && i+1 < len(args) {
			i++
			opts = append(opts, args[i])
		}
	}
	return opts, nil
}

// printHelp prints the command vocabulary followed by the wrapper options.
func printHelp(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprint(w, command.HelpText())
	_, _ = fmt.Fprintf(w, "\nUsage:\n  %s\n\nOptions:\n", cmd.UseLine())
	_, _ = fmt.Fprint(w, cmd.Flags().FlagUsages())
}

// isSilent reports whether err only carries an exit code.
//
// The backend has already explained its own failure on stderr, so a bare
// status is passed through without further output.
func isSilent(err error) bool {
	exitErr, ok := errors.IsExitError(err)
	return ok && exitErr.Message == "" && exitErr.Err == nil
}

// resetFlags restores every wrapper flag to its default.
func resetFlags() {
	verboseFlag = false
	versionFlag = false
	helpFlag = false
	dryRunFlag = false
	abortOnFailureFlag = false
	outputFlag = "text"
	backendFlag = ""
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}
