package chart

import (
	"context"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/helm-git/helm"
	helmchart "helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/repo"
)

// DefinitionFile is the file that marks a chart directory.
const DefinitionFile = "Chart.yaml"

// IndexFile is the name of the generated repository index.
const IndexFile = "index.yaml"

// Tool abstracts the helm operations used by the pipeline to enable testing.
type Tool interface {
	ShowChart(ctx context.Context, dir string) (*helmchart.Metadata, error)
	DependencyUpdate(ctx context.Context, dir string, guard helm.Guard) error
	Package(ctx context.Context, dir, dest string) error
	RepoIndex(ctx context.Context, dir, url string) error
}

var _ Tool = (*helm.Client)(nil)

// Candidate is a chart found by Discover.
type Candidate struct {
	// DefinitionPath is the absolute path of the chart's Chart.yaml.
	DefinitionPath string

	// Dir is the chart directory.
	Dir string

	// Name is the chart name, the directory name until the chart is inspected.
	Name string

	// ArtifactPath is the packaged archive, set once the chart is packaged.
	ArtifactPath string
}

// RunOptions control a single pipeline run.
type RunOptions struct {
	// BaseURL is the URL recorded for every archive in the index.
	BaseURL string

	// DependencyUpdate enables 'helm dependency update' for every chart.
	DependencyUpdate bool

	// Package enables packaging. When disabled, archives already present in
	// the chart root are indexed instead.
	Package bool

	// Key identifies the request for the dependency guard.
	Key string

	// Guard bounds nested dependency updates.
	Guard helm.Guard

	// ScratchDir receives the chart copies that are packaged. Required when
	// Package is set.
	ScratchDir string
}

// Result describes a completed run.
type Result struct {
	// Charts are the processed charts, in discovery order.
	Charts []Candidate

	// IndexPath is the path of the generated index.yaml.
	IndexPath string

	// Index is the loaded and validated index.
	Index *repo.IndexFile
}

// Pipeline runs the chart steps with a Tool.
type Pipeline struct {
	tool   Tool
	fs     billy.Filesystem
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)
