package git

import (
	"github.com/go-git/go-billy/v5"
	gogit "github.com/go-git/go-git/v5"
)

// Repository wraps a go-git repository with platform conventions.
// It stores both the underlying go-git repository and a billy filesystem
// for all I/O operations, providing escape hatches for advanced use cases.
type Repository struct {
	path string
	bare bool
	repo *gogit.Repository
	fs   billy.Filesystem
}

// Remote is a simple value type representing a Git remote.
type Remote struct {
	Name string
	URLs []string
}

// RemoteOptions configures remote management.
type RemoteOptions struct {
	Name string
	URL  string
}

// RepositoryOption configures repository creation operations (Init, Open).
type RepositoryOption func(*repositoryOptions)

// repositoryOptions holds the configuration for repository creation.
type repositoryOptions struct {
	fs   billy.Filesystem
	bare bool
}

// WithFilesystem sets the billy filesystem to use for repository operations.
// If not provided, defaults to the local filesystem and the repository path is
// made absolute.
//
// Example:
//
//	repo, err := git.Init("/repo", git.WithFilesystem(memfs.New()))
func WithFilesystem(fs billy.Filesystem) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.fs = fs
	}
}

// WithBare creates a bare repository (no working tree).
// Only applicable to Init operations.
//
// Example:
//
//	repo, err := git.Init("/path/to/repo.git", git.WithBare())
func WithBare() RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.bare = true
	}
}
