package cache

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/gofrs/flock"
	"github.com/jmgilman/helm-git/exec"
	"github.com/jmgilman/helm-git/git"
)

// lockRetryDelay is how often a contended mirror lock is retried.
const lockRetryDelay = 100 * time.Millisecond

// New creates a RepoCache rooted at root. Nothing is touched on disk until
// the first Resolve.
//
// Example:
//
//	c := cache.New("/var/cache/helm-git/repos", cache.WithLogger(logger))
func New(root string, opts ...Option) *RepoCache {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}

	c := &RepoCache{
		root:   root,
		fs:     osfs.New("/"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ops == nil {
		c.ops = git.NewCLI(nil)
	}
	return c
}

// Root returns the cache root directory.
func (c *RepoCache) Root() string {
	return c.root
}

// Entry returns the mirror entry repoURL maps to.
func (c *RepoCache) Entry(repoURL string) Entry {
	key := NormalizeURL(repoURL)
	host, identity, _ := strings.Cut(key, "/")
	return Entry{
		Host:     host,
		Identity: identity,
		Key:      key,
		Path:     filepath.Join(c.root, filepath.FromSlash(key)+".git"),
	}
}

// Resolve makes ref available in the mirror of repoURL and returns a file://
// URL to fetch it from.
//
// When ref already exists as a tag in the mirror no network access is made.
// Otherwise a single depth-1 fetch of ref is performed. Any failure returns
// an error wrapping ErrCacheMiss.
func (c *RepoCache) Resolve(ctx context.Context, repoURL, ref string) (string, error) {
	entry := c.Entry(repoURL)
	logger := c.logger.With("mirror", entry.Path, "ref", ref)

	if err := c.fs.MkdirAll(filepath.Dir(entry.Path), 0o755); err != nil {
		return "", miss(err, "failed to create cache directory for %s", entry.Key)
	}

	lock := flock.New(entry.Path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		if err == nil {
			err = errors.New("lock not acquired")
		}
		return "", miss(err, "failed to lock mirror %s", entry.Key)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("failed to release mirror lock", "error", err)
		}
	}()

	repo, err := c.openOrCreate(entry, repoURL)
	if err != nil {
		return "", err
	}

	source := "file://" + entry.Path

	cached, err := repo.HasTag(ref)
	if err != nil {
		return "", miss(err, "failed to inspect mirror %s", entry.Key)
	}
	if cached {
		logger.Debug("ref found in mirror, skipping fetch")
		return source, nil
	}

	logger.Debug("fetching ref into mirror", "remote", exec.RedactString(repoURL))
	if err := c.ops.Fetch(ctx, entry.Path, ref); err != nil {
		return "", miss(err, "failed to fetch %q into mirror %s", ref, entry.Key)
	}

	return source, nil
}

// exists reports whether path exists on the cache filesystem.
func (c *RepoCache) exists(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}
