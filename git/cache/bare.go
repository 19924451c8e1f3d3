package cache

import (
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/helm-git/git"
)

// openOrCreate returns the mirror for entry, creating it when missing.
//
// A new mirror is a bare repository with repoURL registered as origin. When
// any step of creating it fails the directory is removed, so a half-built
// mirror never shadows the remote on later requests.
func (c *RepoCache) openOrCreate(entry Entry, repoURL string) (*git.Repository, error) {
	if c.exists(entry.Path) {
		repo, err := git.Open(entry.Path, git.WithFilesystem(c.fs))
		if err != nil {
			return nil, miss(err, "failed to open mirror %s", entry.Key)
		}
		return repo, nil
	}

	c.logger.Debug("creating mirror", "mirror", entry.Path)

	repo, err := git.Init(entry.Path, git.WithFilesystem(c.fs), git.WithBare())
	if err != nil {
		c.discard(entry)
		return nil, miss(err, "failed to initialize mirror %s", entry.Key)
	}

	if err := repo.AddRemote(git.RemoteOptions{Name: "origin", URL: repoURL}); err != nil {
		c.discard(entry)
		return nil, miss(err, "failed to register origin for mirror %s", entry.Key)
	}

	return repo, nil
}

// discard removes a mirror whose setup failed.
func (c *RepoCache) discard(entry Entry) {
	if err := util.RemoveAll(c.fs, entry.Path); err != nil {
		c.logger.Debug("failed to remove incomplete mirror", "mirror", entry.Path, "error", err)
	}
}
