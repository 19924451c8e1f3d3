// Package errors provides the structured error type used across helm-git.
//
// Every failure that can abort a request carries an ErrorCode from the
// resolver's taxonomy (INVALID_URI_FORMAT, DISALLOWED_PROTOCOL,
// REMOTE_UNREACHABLE, REF_NOT_FOUND, EMPTY_CHECKOUT, NO_CHARTS_FOUND,
// TOOL_FAILURE), a classification (retryable or permanent), a human-readable
// message naming the ref, path or URI involved, and optional context metadata.
// Errors remain compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap).
//
// # Creating errors
//
//	err := errors.Newf(errors.CodeRefNotFound, "ref %q not found under %q", ref, subPath)
//
// # Wrapping errors
//
//	if err := ops.Fetch(ctx, dir, ref); err != nil {
//	    return errors.Wrapf(err, errors.CodeRemoteUnreachable, "unable to fetch %s", url)
//	}
//
// # Context
//
//	err = errors.WithContext(err, "step", "package")
//
// The CACHE_UNAVAILABLE code marks failures of the optional caches. Callers are
// expected to recover from it locally and continue without the cache; it is
// never reported as the reason a request failed.
package errors
