package resolver

import (
	"log/slog"

	"github.com/jmgilman/helm-git/chart"
	"github.com/jmgilman/helm-git/git"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. Each request logs with a "request" attribute.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithRefOperations replaces the git CLI used for fetch and checkout.
func WithRefOperations(ops git.RefOperations) Option {
	return func(r *Resolver) {
		r.ops = ops
	}
}

// WithTool replaces the helm CLI used by the chart pipeline.
func WithTool(tool chart.Tool) Option {
	return func(r *Resolver) {
		r.tool = tool
	}
}
