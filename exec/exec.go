package exec

import (
	"context"
	"io"
)

// Executor is the interface for executing commands.
type Executor interface {
	// WithEnv returns an Executor that adds the given environment variables.
	WithEnv(env map[string]string) Executor

	// WithDir returns an Executor that runs commands in dir.
	WithDir(dir string) Executor

	// WithContext returns an Executor bound to ctx. Canceling ctx kills the
	// running process.
	WithContext(ctx context.Context) Executor

	// WithInheritEnv returns an Executor that starts from the parent process
	// environment.
	WithInheritEnv() Executor

	// WithStdout returns an Executor that streams stdout to w when passthrough
	// is enabled.
	WithStdout(w io.Writer) Executor

	// WithStderr returns an Executor that streams stderr to w when passthrough
	// is enabled.
	WithStderr(w io.Writer) Executor

	// WithPassthrough returns an Executor that streams output while capturing it.
	WithPassthrough() Executor

	// Run executes the command given by args and waits for it to exit.
	Run(args ...string) (*Result, error)
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is stdout and stderr interleaved in write order
	Combined string

	// ExitCode is the exit code returned by the command, -1 if it never ran
	ExitCode int
}
