package cache

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/helm-git/git"
)

// RepoCache manages bare mirrors of remote repositories below a root
// directory.
type RepoCache struct {
	root   string
	fs     billy.Filesystem
	ops    git.RefOperations
	logger *slog.Logger
}

// Entry describes the mirror for one repository identity.
type Entry struct {
	// Host is the repository host without port or credentials.
	Host string

	// Identity is the repository path on Host without the .git suffix.
	Identity string

	// Key is Host/Identity.
	Key string

	// Path is the mirror directory.
	Path string
}

// Option configures a RepoCache.
type Option func(*RepoCache)
