package exec

import (
	"fmt"
	"strings"
)

// ExecError represents an error that occurred during command execution.
// It includes the exit code, the command that was run, and any captured output.
type ExecError struct {
	// Command is the full command that was executed (including arguments)
	Command []string

	// ExitCode is the exit code returned by the command
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface. Credentials embedded in URL arguments
// are redacted and the last line of stderr is appended when present.
func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command %v failed with exit code %d", Redact(e.Command), e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if detail := e.Detail(); detail != "" {
		msg += ": " + detail
	}
	return msg
}

// Detail returns the last non-empty line of stderr, which is where git and
// helm print the reason for a failure.
func (e *ExecError) Detail() string {
	lines := strings.Split(strings.TrimSpace(e.Stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return RedactString(line)
		}
	}
	return ""
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
