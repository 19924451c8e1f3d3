package reqcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/gofrs/flock"
	platformerrors "github.com/jmgilman/helm-git/errors"
)

// ResultFile is the name of the file holding the emitted bytes of an entry.
const ResultFile = "result"

// lockRetryDelay is how often a contended entry lock is retried.
const lockRetryDelay = 100 * time.Millisecond

// ComputeFunc produces the output of a request in outDir and returns the
// bytes to emit.
type ComputeFunc func(ctx context.Context, outDir string) ([]byte, error)

// Cache is a request cache rooted at a directory. A nil *Cache, or one
// created with an empty root, is disabled: every call computes in a temporary
// directory.
type Cache struct {
	root    string
	tempDir string
	fs      billy.Filesystem
	logger  *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithTempDir sets where temporary output directories are created when the
// cache is disabled or unusable. Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(c *Cache) {
		c.tempDir = dir
	}
}

// New creates a Cache rooted at root. Nothing is touched on disk until the
// first GetOrCompute.
func New(root string, opts ...Option) *Cache {
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}

	c := &Cache{
		root:   root,
		fs:     osfs.New("/"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tempDir == "" {
		c.tempDir = os.TempDir()
	}
	return c
}

// Key returns the cache key of raw.
func Key(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Enabled reports whether results are persisted.
func (c *Cache) Enabled() bool {
	return c != nil && c.root != ""
}

// Path returns the entry directory for raw, or "" when the cache is disabled.
func (c *Cache) Path(raw string) string {
	if !c.Enabled() {
		return ""
	}
	return filepath.Join(c.root, Key(raw))
}

// GetOrCompute returns the cached result for raw or, on a miss, runs compute
// and stores its output. Errors from compute are returned unchanged and
// nothing is stored. Cache failures never fail the call.
func (c *Cache) GetOrCompute(ctx context.Context, raw string, compute ComputeFunc) ([]byte, error) {
	if c == nil {
		return New("").computeTemp(ctx, compute)
	}
	if !c.Enabled() {
		return c.computeTemp(ctx, compute)
	}

	key := Key(raw)
	entry := filepath.Join(c.root, key)
	logger := c.logger.With("entry", entry)

	if err := c.fs.MkdirAll(c.root, 0o755); err != nil {
		logger.Debug("request cache unavailable", "error", err)
		return c.computeTemp(ctx, compute)
	}

	lock := flock.New(entry + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil || !locked {
		if err == nil {
			err = errors.New("lock not acquired")
		}
		logger.Debug("failed to lock request cache entry", "error", err)
		return c.computeTemp(ctx, compute)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("failed to release request cache lock", "error", err)
		}
	}()

	if data, ok := c.lookup(entry, logger); ok {
		logger.Debug("request cache hit")
		return data, nil
	}
	if c.exists(entry) {
		logger.Debug("discarding unreadable request cache entry")
		if err := util.RemoveAll(c.fs, entry); err != nil {
			logger.Debug("failed to discard request cache entry", "error", err)
			return c.computeTemp(ctx, compute)
		}
	}

	staging, err := util.TempDir(c.fs, c.root, key+".staging-")
	if err != nil {
		logger.Debug("failed to create staging directory", "error", err)
		return c.computeTemp(ctx, compute)
	}
	promoted := false
	defer func() {
		if !promoted {
			c.remove(staging, logger)
		}
	}()

	data, err := compute(ctx, staging)
	if err != nil {
		return nil, err
	}

	if err := util.WriteFile(c.fs, filepath.Join(staging, ResultFile), data, 0o644); err != nil {
		logger.Debug("failed to store request result", "error", err)
		return data, nil
	}
	if err := c.fs.Rename(staging, entry); err != nil {
		logger.Debug("failed to promote request cache entry", "error", err)
		return data, nil
	}
	promoted = true
	logger.Debug("stored request cache entry")

	return data, nil
}

// lookup returns the stored result of entry.
func (c *Cache) lookup(entry string, logger *slog.Logger) ([]byte, bool) {
	f, err := c.fs.Open(filepath.Join(entry, ResultFile))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("failed to open request cache entry", "error", err)
		}
		return nil, false
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		logger.Debug("failed to read request cache entry", "error", err)
		return nil, false
	}
	return data, true
}

// computeTemp runs compute in a temporary directory that is removed
// afterwards.
func (c *Cache) computeTemp(ctx context.Context, compute ComputeFunc) ([]byte, error) {
	if err := c.fs.MkdirAll(c.tempDir, 0o755); err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to create %s", c.tempDir)
	}
	dir, err := util.TempDir(c.fs, c.tempDir, "helm-git-out-")
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create output directory")
	}
	defer c.remove(dir, c.logger)

	return compute(ctx, dir)
}

func (c *Cache) remove(dir string, logger *slog.Logger) {
	if err := util.RemoveAll(c.fs, dir); err != nil {
		logger.Debug("failed to remove directory", "path", dir, "error", err)
	}
}

func (c *Cache) exists(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}
