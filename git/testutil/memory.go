// Package testutil provides fixture repositories for testing the git, cache
// and resolver packages. Repositories are built with go-git, either in memory
// or on disk, and populated with branches, lightweight and annotated tags and
// chart trees.
package testutil

import (
	"sort"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/jmgilman/helm-git/git"
)

// NewMemoryRepo creates a new in-memory Git repository for testing.
// It uses billy's memory filesystem (memfs) to provide a fully functional
// repository without touching the actual filesystem.
//
// The returned filesystem can be used to create files and directories
// within the repository's working tree.
func NewMemoryRepo() (*git.Repository, billy.Filesystem, error) {
	fs := memfs.New()

	repo, err := git.Init("/", git.WithFilesystem(fs))
	if err != nil {
		return nil, nil, err
	}

	return repo, fs, nil
}

// CreateTestFile creates a file with the specified content in the given
// filesystem. Parent directories are created as needed and an existing file
// is overwritten.
func CreateTestFile(fs billy.Filesystem, path, content string) error {
	//nolint:wrapcheck // Test utility - simple file operation error
	return util.WriteFile(fs, path, []byte(content), 0o644)
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  TestAuthor,
		Email: TestEmail,
		When:  time.Now(),
	}
}

// Commit writes files into the repository's working tree, stages them and
// commits with the test author. It returns the commit hash.
func Commit(repo *git.Repository, message string, files map[string]string) (string, error) {
	wt, err := repo.Underlying().Worktree()
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return "", err
	}

	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := CreateTestFile(repo.Filesystem(), path, files[path]); err != nil {
			return "", err
		}
		if _, err := wt.Add(path); err != nil {
			//nolint:wrapcheck // Test utility - errors from go-git are transparent
			return "", err
		}
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author:            signature(),
		AllowEmptyCommits: len(files) == 0,
	})
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return "", err
	}

	return hash.String(), nil
}

// Tag creates a tag named name on commit. An empty message creates a
// lightweight tag; anything else creates an annotated tag.
func Tag(repo *git.Repository, name, commit, message string) error {
	var opts *gogit.CreateTagOptions
	if message != "" {
		opts = &gogit.CreateTagOptions{
			Tagger:  signature(),
			Message: message,
		}
	}

	_, err := repo.Underlying().CreateTag(name, plumbing.NewHash(commit), opts)
	//nolint:wrapcheck // Test utility - errors from go-git are transparent
	return err
}

// Branch points refs/heads/<name> at commit.
func Branch(repo *git.Repository, name, commit string) error {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), plumbing.NewHash(commit))
	//nolint:wrapcheck // Test utility - errors from go-git are transparent
	return repo.Underlying().Storer.SetReference(ref)
}

// Checkout switches the working tree to branch.
func Checkout(repo *git.Repository, branch string) error {
	wt, err := repo.Underlying().Worktree()
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return err
	}

	//nolint:wrapcheck // Test utility - errors from go-git are transparent
	return wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
	})
}
