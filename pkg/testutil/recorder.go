// Package testutil provides shared test doubles for spiv packages.
package testutil

import (
	"context"
	"sync"

	"github.com/ajxudir/spiv/pkg/cmdexec"
)

// Result is a scripted outcome for one recorded call.
type Result struct {
	Code int
	Err  error
}

// Recorder is a cmdexec.Runner that captures argument vectors without
// spawning anything.
//
// Calls consume Results in order; once they run out every call returns
// status 0.
//
// Example:
//
//	rec := &testutil.Recorder{Results: []testutil.Result{{Code: 100}}}
//	d := dispatch.New(dispatch.WithRunner(rec))
type Recorder struct {
	mu      sync.Mutex
	Calls   [][]string
	Results []Result
}

var _ cmdexec.Runner = (*Recorder)(nil)

// Run records argv and returns the next scripted result.
func (r *Recorder) Run(_ context.Context, argv []string, _ cmdexec.Streams) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls = append(r.Calls, append([]string(nil), argv...))
	if len(r.Results) == 0 {
		return 0, nil
	}
	res := r.Results[0]
	r.Results = r.Results[1:]
	return res.Code, res.Err
}

// Argvs returns a copy of every recorded argument vector.
func (r *Recorder) Argvs() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]string, len(r.Calls))
	copy(out, r.Calls)
	return out
}
