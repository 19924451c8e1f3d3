// Package exec runs the external programs helm-git drives: the git CLI for
// ref fetching and checkout, and the helm CLI for inspecting, packaging and
// indexing charts.
//
// The package wraps os/exec behind the Executor interface so callers accept an
// interface and tests can substitute a recorder (see package exectest). Every
// With* method returns a new Executor; the receiver is never modified, so a
// configured executor can be shared and specialized per call:
//
//	base := exec.New(exec.WithInheritEnv(), exec.WithLogger(logger))
//	git := exec.NewWrapper(base, "git")
//
//	result, err := git.WithDir(tree).WithContext(ctx).Run("checkout", "--quiet", ref)
//
// Standard output and standard error are always captured. With passthrough
// enabled they are additionally streamed to the configured writers, which is
// how trace mode surfaces git and helm progress on stderr.
//
// There are no timeouts: a hung child process hangs the request until the
// context is canceled, which happens when the process receives SIGINT or
// SIGTERM.
package exec
