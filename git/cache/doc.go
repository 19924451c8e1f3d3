// Package cache keeps a local bare mirror per remote repository so that
// repeated requests for the same repository reuse previously fetched objects.
//
// # Layout
//
// Mirrors live below the cache root, keyed by host and repository identity:
//
//	$HELM_GIT_REPO_CACHE/
//	├── github.com/
//	│   └── org/
//	│       ├── charts.git/       # bare mirror, origin = the remote URL
//	│       └── charts.git.lock   # advisory lock
//	└── localhost/
//	    └── srv/git/infra.git/
//
// The key is computed by NormalizeURL and does not depend on how the
// repository was addressed: https, http, ssh, scp-like and file URLs of the
// same repository, with or without credentials, a port or a trailing .git,
// share one mirror.
//
// # Resolving
//
//	c := cache.New("/var/cache/helm-git/repos")
//	source, err := c.Resolve(ctx, "https://github.com/org/charts", "v1.2.0")
//	if errors.Is(err, cache.ErrCacheMiss) {
//	    source = "https://github.com/org/charts" // fall back to the remote
//	}
//
// Resolve creates the mirror on first use, returns immediately when the ref
// is already present as a local tag, and otherwise performs a single depth-1
// fetch of the ref into the mirror. The returned source is a file:// URL to
// clone from in place of the remote.
//
// Every failure inside the cache is reported as ErrCacheMiss. Callers are
// expected to fall back to the remote URL; the cache never fails a request.
//
// # Concurrency
//
// Each mirror is guarded by an advisory file lock held for the duration of
// setup and fetch. Mirrors are never deleted by this package, except for a
// mirror whose setup failed, which is removed so the next request retries.
package cache
