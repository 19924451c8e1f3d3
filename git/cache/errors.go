package cache

import (
	"fmt"

	platformerrors "github.com/jmgilman/helm-git/errors"
)

// ErrCacheMiss is returned by Resolve whenever the mirror cannot serve the
// request. It is never fatal: callers fall back to the remote URL.
var ErrCacheMiss = platformerrors.New(platformerrors.CodeCacheUnavailable, "repository cache miss")

// miss wraps cause so that both errors.Is(err, ErrCacheMiss) and
// errors.Is(err, cause) hold.
func miss(cause error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %w", ErrCacheMiss, fmt.Sprintf(format, args...), cause)
}
