package resolver

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"github.com/jmgilman/helm-git/chart"
	"github.com/jmgilman/helm-git/config"
	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/exec"
	"github.com/jmgilman/helm-git/git"
	"github.com/jmgilman/helm-git/git/cache"
	"github.com/jmgilman/helm-git/helm"
	"github.com/jmgilman/helm-git/reqcache"
	"github.com/jmgilman/helm-git/uri"
)

// Resolver resolves helm-git URIs into bytes.
type Resolver struct {
	cfg      config.Config
	fs       billy.Filesystem
	logger   *slog.Logger
	ops      git.RefOperations
	tool     chart.Tool
	repos    *cache.RepoCache
	requests *reqcache.Cache
	pipeline *chart.Pipeline
}

// New creates a Resolver from cfg. git and helm are run from cfg.GitBin and
// cfg.HelmBin unless replaced by options.
func New(cfg config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:    cfg,
		fs:     osfs.New("/"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.ops == nil || r.tool == nil {
		base := r.executor()
		if r.ops == nil {
			r.ops = git.NewCLI(exec.NewWrapper(base, cfg.GitBin))
		}
		if r.tool == nil {
			r.tool = helm.NewClient(exec.NewWrapper(base, cfg.HelmBin), helm.WithLogger(r.logger))
		}
	}

	if cfg.RepoCache != "" {
		r.repos = cache.New(cfg.RepoCache, cache.WithRefOperations(r.ops), cache.WithLogger(r.logger))
	}
	r.requests = reqcache.New(cfg.ChartCache,
		reqcache.WithTempDir(cfg.TempDir()),
		reqcache.WithLogger(r.logger),
	)
	r.pipeline = chart.New(r.tool, chart.WithLogger(r.logger))

	return r
}

// executor returns the base executor for git and helm. Child processes
// inherit the environment; in trace mode their output is copied to stderr,
// keeping stdout for the result.
func (r *Resolver) executor() exec.Executor {
	opts := []exec.Option{exec.WithInheritEnv(), exec.WithLogger(r.logger)}
	if r.cfg.Trace {
		opts = append(opts, exec.WithPassthrough(), exec.WithStdout(os.Stderr), exec.WithStderr(os.Stderr))
	}
	return exec.New(opts...)
}

// Resolve returns the bytes named by raw.
func (r *Resolver) Resolve(ctx context.Context, raw string) ([]byte, error) {
	logger := r.logger.With("request", uuid.NewString())

	d, err := uri.Parse(raw, uri.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	logger = logger.With("uri", d.Redacted())
	logger.Debug("resolving request", "ref", d.Ref, "path", d.SubPath)

	return r.requests.GetOrCompute(ctx, raw, func(ctx context.Context, out string) ([]byte, error) {
		return r.compute(ctx, d, reqcache.Key(raw), out, logger)
	})
}

func (r *Resolver) compute(ctx context.Context, d *uri.Descriptor, key, out string, logger *slog.Logger) ([]byte, error) {
	ws, err := newWorkspace(r.fs, r.cfg.TempDir(), logger)
	if err != nil {
		return nil, err
	}
	defer ws.Cleanup()

	tree, err := r.checkout(ctx, d, ws, logger)
	if err != nil {
		return nil, err
	}

	layout := d.DirectoryLayout()
	if d.SubPath != "" {
		path := filepath.Join(tree, filepath.FromSlash(d.SubPath))
		info, err := r.fs.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			logger.Debug("emitting file from repository", "file", d.SubPath)
			return r.copyFile(d, path, out)
		}
		if err != nil || !info.IsDir() {
			layout = d.FileLayout()
		}
	}

	scratch, err := ws.Subdir("package")
	if err != nil {
		return nil, err
	}
	baseURL := d.CanonicalURI(layout.Dir)
	if d.HasCredentials() {
		logger.Debug("index URLs carry the credentials of the request URI and are stored with the result",
			"dir", layout.Dir)
	}
	_, err = r.pipeline.Run(ctx, filepath.Join(tree, filepath.FromSlash(layout.Dir)), out, chart.RunOptions{
		BaseURL:          baseURL,
		DependencyUpdate: d.DependencyUpdate,
		Package:          d.Package,
		Key:              key,
		Guard:            r.cfg.Guard(),
		ScratchDir:       scratch,
	})
	if err != nil {
		return nil, err
	}

	target := filepath.Join(out, layout.Target)
	data, err := r.readFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, platformerrors.WithContext(
				platformerrors.Newf(platformerrors.CodeNotFound,
					"%s was not produced from %q at %s", layout.Target, layout.Dir, d.Ref),
				"file", layout.Target,
			)
		}
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to read %s", target)
	}
	logger.Debug("emitting pipeline output", "file", layout.Target)

	return data, nil
}

// checkout materializes the requested ref in the workspace, preferring the
// repository mirror when one is configured.
func (r *Resolver) checkout(ctx context.Context, d *uri.Descriptor, ws *workspace, logger *slog.Logger) (string, error) {
	source := d.RepoURL()
	if r.repos != nil {
		mirror, err := r.repos.Resolve(ctx, source, d.Ref)
		if err != nil {
			logger.Debug("repository cache unavailable, fetching from remote",
				"error", err, "retryable", platformerrors.IsRetryable(err))
		} else {
			source = mirror
		}
	}

	tree, err := ws.Subdir("checkout")
	if err != nil {
		return "", err
	}
	err = git.CheckoutRef(ctx, git.CheckoutOptions{
		Path:    tree,
		Source:  source,
		Ref:     d.Ref,
		SubPath: d.SubPath,
		Sparse:  d.Sparse,
		Ops:     r.ops,
		Logger:  logger,
	})
	if err != nil {
		return "", err
	}

	return tree, nil
}

// copyFile returns the content of the file at path. A copy is written to out
// so that a cached entry holds it too.
func (r *Resolver) copyFile(d *uri.Descriptor, path, out string) ([]byte, error) {
	data, err := r.readFile(path)
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to read %s", d.SubPath)
	}
	if err := util.WriteFile(r.fs, filepath.Join(out, d.File), data, 0o644); err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to copy %s", d.SubPath)
	}

	return data, nil
}

func (r *Resolver) readFile(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}
