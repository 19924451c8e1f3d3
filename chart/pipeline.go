package chart

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/helm"
	"helm.sh/helm/v3/pkg/repo"
)

// New creates a Pipeline that runs helm operations through tool.
func New(tool Tool, opts ...Option) *Pipeline {
	p := &Pipeline{
		tool:   tool,
		fs:     osfs.New("/"),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every chart under root and writes the archives and
// index.yaml to target, which is created if needed.
func (p *Pipeline) Run(ctx context.Context, root, target string, opts RunOptions) (*Result, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid chart root %q", root)
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid target %q", target)
	}
	if opts.Package && opts.ScratchDir == "" {
		return nil, platformerrors.New(platformerrors.CodeInvalidInput, "packaging requires a scratch directory")
	}

	charts, err := discover(p.fs, root)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("discovered charts", "root", root, "count", len(charts))

	if err := p.fs.MkdirAll(target, 0o755); err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to create %s", target)
	}

	for i := range charts {
		if err := p.process(ctx, &charts[i], target, opts); err != nil {
			return nil, err
		}
	}

	if !opts.Package {
		if err := p.collectArchives(root, target); err != nil {
			return nil, err
		}
	}

	index, err := p.index(ctx, target, opts.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Result{
		Charts:    charts,
		IndexPath: filepath.Join(target, IndexFile),
		Index:     index,
	}, nil
}

func (p *Pipeline) process(ctx context.Context, c *Candidate, target string, opts RunOptions) error {
	md, err := p.tool.ShowChart(ctx, c.Dir)
	if err != nil {
		return err
	}
	c.Name = md.Name
	logger := p.logger.With("chart", c.Name, "dir", c.Dir)

	if opts.DependencyUpdate {
		if opts.Guard.Allow(opts.Key) {
			logger.Debug("updating dependencies", "depth", opts.Guard.Depth)
			if err := p.tool.DependencyUpdate(ctx, c.Dir, opts.Guard.Child(opts.Key)); err != nil {
				return err
			}
		} else {
			logger.Debug("skipping dependency update",
				"depth", opts.Guard.Depth, "max_depth", opts.Guard.Max)
		}
	}

	if !opts.Package {
		return nil
	}

	// Charts may share a name, so each copy gets its own parent.
	parent, err := util.TempDir(p.fs, opts.ScratchDir, "chart-")
	if err != nil {
		return platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure,
			fmt.Sprintf("failed to create scratch directory for %s", c.Name),
			map[string]interface{}{"step": helm.StepPackage, "path": c.Dir})
	}
	copyPath := filepath.Join(parent, c.Name)
	if err := copyDir(p.fs, c.Dir, copyPath); err != nil {
		return platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure,
			fmt.Sprintf("failed to copy chart %s", c.Name),
			map[string]interface{}{"step": helm.StepPackage, "path": c.Dir})
	}
	if err := p.tool.Package(ctx, copyPath, target); err != nil {
		return err
	}
	c.ArtifactPath = filepath.Join(target, fmt.Sprintf("%s-%s.tgz", md.Name, md.Version))
	logger.Debug("packaged chart", "artifact", c.ArtifactPath)

	return nil
}

// collectArchives copies pre-built archives in root into target.
func (p *Pipeline) collectArchives(root, target string) error {
	entries, err := p.fs.ReadDir(root)
	if err != nil {
		return platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to read %s", root)
	}
	for _, e := range entries {
		if !e.Mode().IsRegular() || !strings.HasSuffix(e.Name(), ".tgz") {
			continue
		}
		src := filepath.Join(root, e.Name())
		if err := copyFile(p.fs, src, filepath.Join(target, e.Name()), e.Mode().Perm()); err != nil {
			return platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure,
				fmt.Sprintf("failed to copy archive %s", e.Name()),
				map[string]interface{}{"step": helm.StepPackage, "path": src})
		}
		p.logger.Debug("collected archive", "archive", e.Name())
	}
	return nil
}

func (p *Pipeline) index(ctx context.Context, target, baseURL string) (*repo.IndexFile, error) {
	if err := p.tool.RepoIndex(ctx, target, baseURL); err != nil {
		return nil, err
	}

	path := filepath.Join(target, IndexFile)
	index, err := repo.LoadIndexFile(path)
	if err != nil {
		return nil, platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure,
			"generated index is invalid",
			map[string]interface{}{"step": helm.StepIndex, "path": path})
	}
	p.logger.Debug("built index", "path", path, "charts", len(index.Entries))

	return index, nil
}
