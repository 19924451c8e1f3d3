package exec

import (
	"context"
	"io"
)

// Wrapper wraps an Executor to provide a command-specific interface.
// It prepends a command name to all Run() calls, making it convenient for
// tools that are called frequently with different arguments such as git and
// helm. Wrapper implements the Executor interface.
type Wrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper creates a new Wrapper that prepends cmd to all Run() calls.
func NewWrapper(executor Executor, cmd string) *Wrapper {
	return &Wrapper{
		executor: executor,
		cmd:      cmd,
	}
}

// Name returns the wrapped command.
func (w *Wrapper) Name() string {
	return w.cmd
}

func (w *Wrapper) with(executor Executor) Executor {
	return &Wrapper{executor: executor, cmd: w.cmd}
}

// WithEnv sets environment variables for the command.
func (w *Wrapper) WithEnv(env map[string]string) Executor {
	return w.with(w.executor.WithEnv(env))
}

// WithDir sets the working directory for the command.
func (w *Wrapper) WithDir(dir string) Executor {
	return w.with(w.executor.WithDir(dir))
}

// WithContext sets the context for the command.
func (w *Wrapper) WithContext(ctx context.Context) Executor {
	return w.with(w.executor.WithContext(ctx))
}

// WithInheritEnv enables environment inheritance.
func (w *Wrapper) WithInheritEnv() Executor {
	return w.with(w.executor.WithInheritEnv())
}

// WithStdout sets the stdout writer.
func (w *Wrapper) WithStdout(out io.Writer) Executor {
	return w.with(w.executor.WithStdout(out))
}

// WithStderr sets the stderr writer.
func (w *Wrapper) WithStderr(out io.Writer) Executor {
	return w.with(w.executor.WithStderr(out))
}

// WithPassthrough enables output passthrough.
func (w *Wrapper) WithPassthrough() Executor {
	return w.with(w.executor.WithPassthrough())
}

// Run executes the wrapped command with the given arguments.
func (w *Wrapper) Run(args ...string) (*Result, error) {
	fullArgs := append([]string{w.cmd}, args...)
	return w.executor.Run(fullArgs...)
}
