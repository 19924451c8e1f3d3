package helm

import (
	"context"
	"log/slog"

	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/exec"
	"helm.sh/helm/v3/pkg/chart"
	"sigs.k8s.io/yaml"
)

// Steps reported in the "step" context of a TOOL_FAILURE error.
const (
	StepInspect    = "inspect"
	StepDependency = "dependency"
	StepPackage    = "package"
	StepIndex      = "index"
)

// Client runs helm commands through an exec.Executor.
type Client struct {
	helm   exec.Executor
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used by the client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client. helm is an executor for the helm binary,
// usually exec.NewWrapper(base, "helm"); if nil, helm from PATH is used with
// the parent environment.
func NewClient(helm exec.Executor, opts ...ClientOption) *Client {
	if helm == nil {
		helm = exec.NewWrapper(exec.New(exec.WithInheritEnv()), "helm")
	}
	c := &Client{helm: helm, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowChart returns the metadata of the chart in dir as reported by
// 'helm show chart'.
func (c *Client) ShowChart(ctx context.Context, dir string) (*chart.Metadata, error) {
	res, err := c.helm.WithContext(ctx).Run("show", "chart", dir)
	if err != nil {
		return nil, toolError(err, StepInspect, dir, "failed to inspect chart")
	}

	var md chart.Metadata
	if err := yaml.Unmarshal([]byte(res.Stdout), &md); err != nil {
		return nil, toolError(err, StepInspect, dir, "failed to parse chart metadata")
	}
	if err := md.Validate(); err != nil {
		return nil, toolError(err, StepInspect, dir, "invalid chart metadata")
	}

	c.logger.Debug("inspected chart", "dir", dir, "name", md.Name, "version", md.Version)
	return &md, nil
}

// DependencyUpdate runs 'helm dependency update' for the chart in dir. guard
// is passed to the process environment so that a nested helm-git invocation
// can decide whether to recurse.
func (c *Client) DependencyUpdate(ctx context.Context, dir string, guard Guard) error {
	_, err := c.helm.WithEnv(guard.Env()).WithContext(ctx).Run("dependency", "update", dir)
	if err != nil {
		return toolError(err, StepDependency, dir, "failed to update chart dependencies")
	}
	return nil
}

// Package runs 'helm package' for the chart in dir, writing the archive to
// dest.
func (c *Client) Package(ctx context.Context, dir, dest string) error {
	_, err := c.helm.WithContext(ctx).Run("package", "--destination", dest, dir)
	if err != nil {
		return toolError(err, StepPackage, dir, "failed to package chart")
	}
	return nil
}

// RepoIndex runs 'helm repo index' over dir with url as the base URL of every
// entry.
func (c *Client) RepoIndex(ctx context.Context, dir, url string) error {
	_, err := c.helm.WithContext(ctx).Run("repo", "index", "--url", url, dir)
	if err != nil {
		return toolError(err, StepIndex, dir, "failed to build repository index")
	}
	return nil
}

func toolError(err error, step, path, message string) error {
	return platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure, message, map[string]interface{}{
		"step": step,
		"path": path,
	})
}
