package cache

import (
	"log/slog"

	"github.com/jmgilman/helm-git/git"
)

// WithRefOperations sets the RefOperations used to fetch refs into mirrors.
// If not provided, defaults to the git CLI.
//
// This option is primarily useful for testing, allowing fetches to be
// observed or failed without network access.
func WithRefOperations(ops git.RefOperations) Option {
	return func(c *RepoCache) {
		c.ops = ops
	}
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *RepoCache) {
		c.logger = logger
	}
}
