package config

import (
	"io"
	"log/slog"
	"os"

	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/helm"
	"github.com/joho/godotenv"
)

// EnvFileVar names a .env-style file loaded before the environment is read.
const EnvFileVar = "HELM_GIT_ENV_FILE"

// LevelTrace is more verbose than slog.LevelDebug.
const LevelTrace = slog.Level(-8)

// Config is the runtime configuration.
type Config struct {
	RepoCache  string `name:"repo-cache" env:"HELM_GIT_REPO_CACHE" help:"Root of the repository mirror cache. Empty disables it."`
	ChartCache string `name:"chart-cache" env:"HELM_GIT_CHART_CACHE" help:"Root of the request cache. Empty disables it."`
	TmpDir     string `name:"tmpdir" env:"HELM_GIT_TMPDIR" help:"Directory for scratch workspaces."`

	HelmBin string `name:"helm-bin" env:"HELM_GIT_HELM_BIN,HELM_BIN" default:"helm" help:"Helm binary."`
	GitBin  string `name:"git-bin" env:"HELM_GIT_GIT_BIN" default:"git" help:"Git binary."`

	Debug bool `name:"debug" env:"HELM_GIT_DEBUG" help:"Enable debug logging."`
	Trace bool `name:"trace" env:"HELM_GIT_TRACE" help:"Enable trace logging and show git and helm output."`

	DependencyDepth    int    `name:"dependency-depth" env:"HELM_GIT_DEPENDENCY_DEPTH" default:"0" hidden:"" help:"Nesting depth of this process."`
	DependencyMaxDepth int    `name:"dependency-max-depth" env:"HELM_GIT_DEPENDENCY_MAX_DEPTH" default:"1" help:"Deepest nesting at which chart dependencies are updated."`
	DependencyChain    string `name:"dependency-chain" env:"HELM_GIT_DEPENDENCY_CHAIN" hidden:"" help:"Requests being resolved by parent processes."`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		HelmBin:            "helm",
		GitBin:             "git",
		DependencyMaxDepth: helm.DefaultMaxDepth,
	}
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	switch {
	case c.HelmBin == "":
		return platformerrors.New(platformerrors.CodeInvalidConfig, "helm binary must not be empty")
	case c.GitBin == "":
		return platformerrors.New(platformerrors.CodeInvalidConfig, "git binary must not be empty")
	case c.DependencyDepth < 0:
		return platformerrors.Newf(platformerrors.CodeInvalidConfig,
			"%s must not be negative, got %d", helm.EnvDepth, c.DependencyDepth)
	case c.DependencyMaxDepth < 0:
		return platformerrors.Newf(platformerrors.CodeInvalidConfig,
			"%s must not be negative, got %d", helm.EnvMaxDepth, c.DependencyMaxDepth)
	}
	return nil
}

// TempDir returns the scratch root, defaulting to os.TempDir().
func (c Config) TempDir() string {
	if c.TmpDir != "" {
		return c.TmpDir
	}
	return os.TempDir()
}

// Guard returns the dependency guard of this process.
func (c Config) Guard() helm.Guard {
	return helm.NewGuard(c.DependencyDepth, c.DependencyMaxDepth, c.DependencyChain)
}

// Level returns the minimum log level.
func (c Config) Level() slog.Level {
	switch {
	case c.Trace:
		return LevelTrace
	case c.Debug:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}

// Logger returns a text logger writing to w at Level().
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.Level(),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok && level <= LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))
}

// LoadEnvFile loads variables from a .env-style file into the process
// environment. Variables that are already set are left alone.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return platformerrors.WithContext(
			platformerrors.Wrapf(err, platformerrors.CodeInvalidConfig, "failed to load environment file %s", path),
			"path", path,
		)
	}
	return nil
}
