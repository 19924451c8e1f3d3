// Command helm-git is a Helm downloader plugin that serves charts straight
// from git repositories.
//
// Helm invokes it as
//
//	helm-git <cert-file> <key-file> <ca-file> git+https://host/repo@path?ref=v1.0.0
//
// and reads the requested file from stdout. Configuration is taken from
// HELM_GIT_* environment variables; see --help.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/jmgilman/helm-git/config"
	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/resolver"
)

var version = "dev"

// CLI is the command line of helm-git.
type CLI struct {
	config.Config `embed:""`

	Version kong.VersionFlag `name:"version" help:"Show version and exit."`

	Args []string `arg:"" name:"args" help:"[cert-file key-file ca-file] uri"`
}

// URI returns the requested URI, the last positional argument.
func (c *CLI) URI() string {
	return c.Args[len(c.Args)-1]
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if n := len(c.Args); n != 1 && n != 4 {
		return platformerrors.Newf(platformerrors.CodeInvalidInput,
			"expected a URI, optionally preceded by cert, key and CA files, got %d arguments", n)
	}
	return c.Config.Validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if path := os.Getenv(config.EnvFileVar); path != "" {
		if err := config.LoadEnvFile(path); err != nil {
			return fail(stderr, err)
		}
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("helm-git"),
		kong.Description("Helm downloader plugin for charts stored in git repositories."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return fail(stderr, err)
	}
	if _, err := parser.Parse(args); err != nil {
		return fail(stderr, err)
	}

	logger := cli.Config.Logger(stderr)
	if len(cli.Args) == 4 && (cli.Args[0] != "" || cli.Args[1] != "" || cli.Args[2] != "") {
		logger.Debug("ignoring certificate arguments, TLS is handled by git")
	}

	data, err := resolver.New(cli.Config, resolver.WithLogger(logger)).Resolve(ctx, cli.URI())
	if err != nil {
		return fail(stderr, err)
	}
	if _, err := stdout.Write(data); err != nil {
		return fail(stderr, err)
	}

	return 0
}

func fail(stderr io.Writer, err error) int {
	if platformerrors.IsRetryable(err) {
		_, _ = fmt.Fprintf(stderr, "helm-git: %v (temporary, retrying may succeed)\n", err)
		return 1
	}
	_, _ = fmt.Fprintf(stderr, "helm-git: %v\n", err)
	return 1
}
