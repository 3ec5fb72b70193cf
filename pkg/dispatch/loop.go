package dispatch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/spiv/pkg/errors"
	"github.com/ajxudir/spiv/pkg/verbose"
)

// Prompt is printed before each interactive command.
const Prompt = "> "

// RunOneShot dispatches args as a single command.
//
// Returns:
//   - int: Process exit code; the backend's status, 0 when nothing was spawned
func (d *Dispatcher) RunOneShot(ctx context.Context, args []string) int {
	return d.Dispatch(ctx, args, OneShot).Code
}

// RunInteractive reads and dispatches commands until -q or end of input.
//
// Backend exit statuses are not reported; the backend's own stderr already
// explains a failure. Spawn failures are printed and the loop continues.
//
// Parameters:
//   - ctx: Context; cancellation ends the loop before the next prompt
//
// Returns:
//   - int: 0 on -q or EOF; errors.ExitFailure if stdin cannot be read
func (d *Dispatcher) RunInteractive(ctx context.Context) int {
	reader := bufio.NewReader(d.stdin)

	for {
		if ctx.Err() != nil {
			return errors.ExitSuccess
		}

		_, _ = fmt.Fprint(d.stdout, Prompt)
		if f, ok := d.stdout.(interface{ Flush() error }); ok {
			_ = f.Flush()
		}

		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			errors.PrintError(d.stderr, fmt.Errorf("reading input: %w", err))
			return errors.ExitFailure
		}
		if err == io.EOF && line == "" {
			verbose.Debugf("Input: end of input")
			return errors.ExitSuccess
		}

		status := d.Dispatch(ctx, strings.Fields(line), Interactive)
		if status.Quit {
			return errors.ExitSuccess
		}
		if err == io.EOF {
			return errors.ExitSuccess
		}
	}
}
