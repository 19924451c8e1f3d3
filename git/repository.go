package git

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// gitDirName is the storage directory of a non-bare repository.
const gitDirName = ".git"

// resolveOptions applies opts and, when no filesystem was given, returns the
// local filesystem together with the absolute form of path.
func resolveOptions(path string, opts []RepositoryOption) (*repositoryOptions, string, error) {
	options := &repositoryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.fs == nil {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, "", wrapError(err, "failed to resolve repository path")
		}
		options.fs = osfs.New("/")
		path = abs
	}

	return options, path, nil
}

// layout returns the object storage and working tree of a repository rooted
// at root. Bare repositories store objects in root itself and have no working
// tree; others keep them in root/.git.
func layout(root billy.Filesystem, bare bool) (*filesystem.Storage, billy.Filesystem, error) {
	if bare {
		return filesystem.NewStorage(root, cache.NewObjectLRUDefault()), nil, nil
	}

	dotGit, err := root.Chroot(gitDirName)
	if err != nil {
		return nil, nil, wrapError(err, "failed to scope filesystem to .git")
	}
	return filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault()), root, nil
}

// Init creates a repository at path, creating the directory if needed.
//
// Init fails with ALREADY_EXISTS when path already holds a repository.
//
//	repo, err := git.Init("/tmp/work/checkout")
//	mirror, err := git.Init("/var/cache/helm-git/repos/github.com/org/charts.git", git.WithBare())
func Init(path string, opts ...RepositoryOption) (*Repository, error) {
	options, path, err := resolveOptions(path, opts)
	if err != nil {
		return nil, err
	}

	if err := options.fs.MkdirAll(path, 0o755); err != nil {
		return nil, wrapError(err, "failed to create repository directory")
	}
	root, err := options.fs.Chroot(path)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to path")
	}

	storage, worktree, err := layout(root, options.bare)
	if err != nil {
		return nil, err
	}
	repo, err := gogit.Init(storage, worktree)
	if err != nil {
		return nil, wrapError(err, "failed to initialize repository")
	}

	return &Repository{path: path, bare: options.bare, repo: repo, fs: root}, nil
}

// Open opens the repository at path. A directory with a .git subdirectory is
// opened with its working tree; anything else is opened as bare.
//
// Open fails with NOT_FOUND when path holds no repository.
func Open(path string, opts ...RepositoryOption) (*Repository, error) {
	options, path, err := resolveOptions(path, opts)
	if err != nil {
		return nil, err
	}

	root, err := options.fs.Chroot(path)
	if err != nil {
		return nil, wrapError(err, "failed to scope filesystem to path")
	}

	info, statErr := root.Stat(gitDirName)
	bare := statErr != nil || !info.IsDir()

	storage, worktree, err := layout(root, bare)
	if err != nil {
		return nil, err
	}
	repo, err := gogit.Open(storage, worktree)
	if err != nil {
		return nil, wrapError(err, "failed to open repository")
	}

	return &Repository{path: path, bare: bare, repo: repo, fs: root}, nil
}

// Path returns the repository location on its filesystem.
func (r *Repository) Path() string {
	return r.path
}

// IsBare reports whether the repository has no working tree.
func (r *Repository) IsBare() bool {
	return r.bare
}

// Underlying returns the go-git repository.
func (r *Repository) Underlying() *gogit.Repository {
	return r.repo
}

// Filesystem returns the working tree filesystem, or the repository
// directory for bare repositories.
func (r *Repository) Filesystem() billy.Filesystem {
	return r.fs
}
