package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/exec"
)

// wrapError wraps an error with context, classifying it as a platform error type.
// It preserves the original error chain for errors.Is/errors.As compatibility.
// If err is nil, returns nil.
func wrapError(err error, context string) error {
	if err == nil {
		return nil
	}

	classified := classifyError(err)

	return fmt.Errorf("%s: %w", context, classified)
}

// classifyError maps go-git errors to platform error types.
// It uses errors.Is() to match go-git error types and returns
// the appropriate platform error code. Unknown errors are passed
// through unchanged to preserve their original information.
//
//nolint:gocyclo,cyclop // each case is a simple mapping
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	// Repository not found errors → ErrNotFound
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "repository does not exist")
	}
	if errors.Is(err, transport.ErrRepositoryNotFound) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "repository not found")
	}

	// Reference not found errors → ErrNotFound
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "reference not found")
	}

	// Repository already exists errors → ErrAlreadyExists
	if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		return platformerrors.Wrap(err, platformerrors.CodeAlreadyExists, "repository already exists")
	}

	// Remote errors
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "remote not found")
	}
	if errors.Is(err, gogit.ErrRemoteExists) {
		return platformerrors.Wrap(err, platformerrors.CodeAlreadyExists, "remote already exists")
	}

	// Authentication/Authorization errors → ErrUnauthorized
	if errors.Is(err, transport.ErrAuthenticationRequired) {
		return platformerrors.Wrap(err, platformerrors.CodeUnauthorized, "authentication required")
	}
	if errors.Is(err, transport.ErrAuthorizationFailed) {
		return platformerrors.Wrap(err, platformerrors.CodeUnauthorized, "authorization failed")
	}

	// Empty remote repository → ErrNotFound (nothing to fetch)
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "remote repository is empty")
	}

	// Invalid input errors → ErrInvalidInput
	if errors.Is(err, gogit.ErrMissingURL) {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "URL is required")
	}
	if errors.Is(err, gogit.ErrMissingName) {
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "name is required")
	}

	// Pass through unknown errors unchanged to preserve original information
	return err
}

// mapExecError converts an exec.ExecError from the git CLI to a platform error.
// It examines stderr and maps the failure patterns git reports for ref
// operations to the codes defined in the errors package.
func mapExecError(err error, context string) error {
	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return wrapError(err, context)
	}

	stderr := strings.ToLower(execErr.Stderr)

	switch {
	case strings.Contains(stderr, "couldn't find remote ref"),
		strings.Contains(stderr, "did not match any file(s) known to git"),
		strings.Contains(stderr, "invalid reference"),
		strings.Contains(stderr, "not our ref"):
		return platformerrors.Wrap(err, platformerrors.CodeRefNotFound, context)
	case strings.Contains(stderr, "authentication failed"),
		strings.Contains(stderr, "permission denied (publickey"),
		strings.Contains(stderr, "could not read username"):
		return platformerrors.Wrap(err, platformerrors.CodeUnauthorized, context)
	case strings.Contains(stderr, "could not resolve host"),
		strings.Contains(stderr, "unable to access"),
		strings.Contains(stderr, "does not appear to be a git repository"),
		strings.Contains(stderr, "could not read from remote repository"),
		strings.Contains(stderr, "connection refused"):
		return platformerrors.Wrap(err, platformerrors.CodeRemoteUnreachable, context)
	}

	return platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, context)
}
