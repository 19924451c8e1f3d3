package git

import (
	"context"
	"fmt"

	"github.com/jmgilman/helm-git/exec"
)

// RefOperations defines the network-facing git operations used to materialize
// a single ref. This interface abstracts the underlying implementation (git
// CLI) to enable testing.
//
// All operations act on a repository directory on the real filesystem, since
// they shell out to the git CLI.
type RefOperations interface {
	// Fetch performs a depth-1 fetch of ref from the origin remote of the
	// repository at dir. Both branches and tags named ref are fetched into
	// their local namespaces.
	Fetch(ctx context.Context, dir, ref string) error

	// Checkout materializes ref in the working tree at dir.
	Checkout(ctx context.Context, dir, ref string) error

	// Probe checks that url answers as a git remote.
	Probe(ctx context.Context, url string) error
}

// CLI is the default implementation of RefOperations that uses the git CLI
// via the exec module.
type CLI struct {
	git exec.Executor
}

var _ RefOperations = (*CLI)(nil)

// NewCLI creates a RefOperations backed by git, an executor that runs the git
// binary, usually exec.NewWrapper(base, "git"). If git is nil, the git binary
// from PATH is used with the parent environment.
func NewCLI(git exec.Executor) *CLI {
	if git == nil {
		git = exec.NewWrapper(exec.New(exec.WithInheritEnv()), "git")
	}
	return &CLI{git: git}
}

// RefSpec returns the fetch refspec that maps ref onto the same name in every
// ref namespace, so a branch lands in refs/heads and a tag in refs/tags.
func RefSpec(ref string) string {
	return fmt.Sprintf("refs/*/%s:refs/*/%s", ref, ref)
}

// Fetch runs 'git fetch -u --depth=1 origin <refspec> <ref>'.
func (c *CLI) Fetch(ctx context.Context, dir, ref string) error {
	_, err := c.git.WithDir(dir).WithContext(ctx).
		Run("fetch", "-u", "--depth=1", "origin", RefSpec(ref), ref)
	if err != nil {
		return mapExecError(err, fmt.Sprintf("failed to fetch ref %q", ref))
	}

	return nil
}

// Checkout runs 'git checkout --quiet <ref>'.
func (c *CLI) Checkout(ctx context.Context, dir, ref string) error {
	_, err := c.git.WithDir(dir).WithContext(ctx).Run("checkout", "--quiet", ref)
	if err != nil {
		return mapExecError(err, fmt.Sprintf("failed to check out ref %q", ref))
	}

	return nil
}

// Probe runs 'git ls-remote <url> HEAD'.
func (c *CLI) Probe(ctx context.Context, url string) error {
	_, err := c.git.WithContext(ctx).Run("ls-remote", url, "HEAD")
	if err != nil {
		return mapExecError(err, fmt.Sprintf("failed to reach %s", exec.RedactString(url)))
	}

	return nil
}
