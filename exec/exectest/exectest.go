// Package exectest provides a recording exec.Executor for tests that drive
// git or helm without spawning processes.
package exectest

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jmgilman/helm-git/exec"
)

// Call is a single recorded invocation.
type Call struct {
	Args        []string
	Dir         string
	Env         map[string]string
	Passthrough bool
	Ctx         context.Context
}

// Line returns the arguments joined by spaces.
func (c Call) Line() string {
	return strings.Join(c.Args, " ")
}

// Handler produces the outcome of a call.
type Handler func(call Call) (*exec.Result, error)

type state struct {
	mu      sync.Mutex
	calls   []Call
	handler Handler
}

// Recorder is an exec.Executor that records calls and answers them with a
// Handler. Executors derived through With* methods share the call log.
type Recorder struct {
	state       *state
	dir         string
	env         map[string]string
	passthrough bool
	ctx         context.Context
}

var _ exec.Executor = (*Recorder)(nil)

// New returns a Recorder that answers every call with handler. A nil handler
// succeeds with empty output.
func New(handler Handler) *Recorder {
	if handler == nil {
		handler = func(Call) (*exec.Result, error) { return OK("") }
	}
	return &Recorder{
		state: &state{handler: handler},
		env:   map[string]string{},
		ctx:   context.Background(),
	}
}

// Calls returns a copy of all recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return append([]Call(nil), r.state.calls...)
}

// Lines returns Line() of every recorded call.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Line()
	}
	return lines
}

func (r *Recorder) clone() *Recorder {
	cp := *r
	cp.env = make(map[string]string, len(r.env))
	for k, v := range r.env {
		cp.env[k] = v
	}
	return &cp
}

func (r *Recorder) WithEnv(env map[string]string) exec.Executor {
	cp := r.clone()
	for k, v := range env {
		cp.env[k] = v
	}
	return cp
}

func (r *Recorder) WithDir(dir string) exec.Executor {
	cp := r.clone()
	cp.dir = dir
	return cp
}

func (r *Recorder) WithContext(ctx context.Context) exec.Executor {
	cp := r.clone()
	cp.ctx = ctx
	return cp
}

func (r *Recorder) WithInheritEnv() exec.Executor      { return r.clone() }
func (r *Recorder) WithStdout(io.Writer) exec.Executor { return r.clone() }
func (r *Recorder) WithStderr(io.Writer) exec.Executor { return r.clone() }

func (r *Recorder) WithPassthrough() exec.Executor {
	cp := r.clone()
	cp.passthrough = true
	return cp
}

// Run records the call and returns the handler's answer.
func (r *Recorder) Run(args ...string) (*exec.Result, error) {
	env := make(map[string]string, len(r.env))
	for k, v := range r.env {
		env[k] = v
	}
	call := Call{
		Args:        append([]string(nil), args...),
		Dir:         r.dir,
		Env:         env,
		Passthrough: r.passthrough,
		Ctx:         r.ctx,
	}

	r.state.mu.Lock()
	r.state.calls = append(r.state.calls, call)
	handler := r.state.handler
	r.state.mu.Unlock()

	return handler(call)
}

// OK returns a successful result with the given stdout.
func OK(stdout string) (*exec.Result, error) {
	return &exec.Result{Stdout: stdout, Combined: stdout}, nil
}

// Fail returns a failed result with the given stderr and exit code, along with
// the matching *exec.ExecError.
func Fail(args []string, stderr string, code int) (*exec.Result, error) {
	result := &exec.Result{Stderr: stderr, Combined: stderr, ExitCode: code}
	return result, &exec.ExecError{
		Command:  args,
		ExitCode: code,
		Stderr:   stderr,
	}
}
