package exec

import (
	"context"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"
	"sort"
)

// Command is the os/exec backed implementation of Executor.
type Command struct {
	ctx         context.Context
	dir         string
	env         map[string]string
	inheritEnv  bool
	passthrough bool
	stdout      io.Writer
	stderr      io.Writer
	logger      *slog.Logger
}

// Option configures a Command at creation time.
type Option func(*Command)

// WithEnv returns an Option that sets environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.env[k] = v
		}
	}
}

// WithDir returns an Option that sets the working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.dir = dir
	}
}

// WithInheritEnv returns an Option that enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.inheritEnv = true
	}
}

// WithPassthrough returns an Option that enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.passthrough = true
	}
}

// WithStdout returns an Option that sets the passthrough stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the passthrough stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithLogger returns an Option that sets the logger used to record each
// invocation at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Command) {
		c.logger = logger
	}
}

// New creates a new Command with the given options.
func New(opts ...Option) *Command {
	cmd := &Command{
		ctx:    context.Background(),
		env:    make(map[string]string),
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// clone returns a copy of c that can be modified without affecting c.
func (c *Command) clone() *Command {
	cp := *c
	cp.env = make(map[string]string, len(c.env))
	for k, v := range c.env {
		cp.env[k] = v
	}
	return &cp
}

// WithEnv implements Executor.
func (c *Command) WithEnv(env map[string]string) Executor {
	cp := c.clone()
	WithEnv(env)(cp)
	return cp
}

// WithDir implements Executor.
func (c *Command) WithDir(dir string) Executor {
	cp := c.clone()
	cp.dir = dir
	return cp
}

// WithContext implements Executor.
func (c *Command) WithContext(ctx context.Context) Executor {
	cp := c.clone()
	cp.ctx = ctx
	return cp
}

// WithInheritEnv implements Executor.
func (c *Command) WithInheritEnv() Executor {
	cp := c.clone()
	cp.inheritEnv = true
	return cp
}

// WithStdout implements Executor.
func (c *Command) WithStdout(w io.Writer) Executor {
	cp := c.clone()
	cp.stdout = w
	return cp
}

// WithStderr implements Executor.
func (c *Command) WithStderr(w io.Writer) Executor {
	cp := c.clone()
	cp.stderr = w
	return cp
}

// WithPassthrough implements Executor.
func (c *Command) WithPassthrough() Executor {
	cp := c.clone()
	cp.passthrough = true
	return cp
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	cmd := osexec.CommandContext(c.ctx, args[0], args[1:]...)
	cmd.Dir = c.dir
	cmd.Env = c.environ()

	stdout := &syncBuffer{}
	stderr := &syncBuffer{}
	combined := &syncBuffer{}
	if c.passthrough {
		cmd.Stdout = io.MultiWriter(stdout, combined, c.stdout)
		cmd.Stderr = io.MultiWriter(stderr, combined, c.stderr)
	} else {
		cmd.Stdout = io.MultiWriter(stdout, combined)
		cmd.Stderr = io.MultiWriter(stderr, combined)
	}

	c.logger.Debug("running command", "args", Redact(args), "dir", c.dir)
	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// environ builds the child environment. A nil slice makes os/exec inherit the
// parent environment, so an explicit empty slice is returned when inheritance
// is off and no variables are set.
func (c *Command) environ() []string {
	var env []string
	if c.inheritEnv {
		env = os.Environ()
	} else {
		env = []string{}
	}

	keys := make([]string, 0, len(c.env))
	for k := range c.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+c.env[k])
	}
	return env
}
