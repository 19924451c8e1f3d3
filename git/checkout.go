package git

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/exec"
)

// CheckoutOptions configures CheckoutRef.
type CheckoutOptions struct {
	// Path is the directory the working tree is created in.
	Path string

	// Source is the URL fetched from: the upstream repository or a file://
	// URL of a local mirror.
	Source string

	// Ref is the branch, tag or commit to materialize.
	Ref string

	// SubPath limits the checkout when Sparse is set. A file is checked out
	// alone, a directory with its content, and a missing path with the
	// content of its parent directory.
	SubPath string

	// Sparse enables sparse checkout of SubPath.
	Sparse bool

	// Ops performs the fetch and checkout. Defaults to NewCLI(nil).
	Ops RefOperations

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CheckoutRef creates a working tree at opts.Path holding the content of
// opts.Ref from opts.Source, fetching only that ref at depth 1.
//
// Errors carry these codes:
//   - REMOTE_UNREACHABLE when the fetch fails and the source does not answer
//   - REF_NOT_FOUND when the fetch fails but the source answers, or when the
//     checkout of the fetched ref fails
//   - EMPTY_CHECKOUT when the working tree ends up with no files
func CheckoutRef(ctx context.Context, opts CheckoutOptions) error {
	ops := opts.Ops
	if ops == nil {
		ops = NewCLI(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	source := exec.RedactString(opts.Source)
	subPath := strings.Trim(opts.SubPath, "/")

	repo, err := Init(opts.Path)
	if err != nil {
		return err
	}
	if err := repo.AddRemote(RemoteOptions{Name: "origin", URL: opts.Source}); err != nil {
		return err
	}

	logger.Debug("fetching ref", "source", source, "ref", opts.Ref, "sparse", opts.Sparse && subPath != "")
	if err := ops.Fetch(ctx, repo.Path(), opts.Ref); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("fetch of %s interrupted: %w", source, ctx.Err())
		}
		if perr := ops.Probe(ctx, opts.Source); perr != nil {
			logger.Debug("remote probe failed", "source", source, "error", perr)
			return platformerrors.WithContextMap(
				platformerrors.Wrapf(err, platformerrors.CodeRemoteUnreachable, "unable to fetch from %s", source),
				map[string]interface{}{"url": source},
			)
		}
		return platformerrors.WithContextMap(
			platformerrors.Wrapf(err, platformerrors.CodeRefNotFound, "ref %q not found in %s", opts.Ref, source),
			map[string]interface{}{"url": source, "ref": opts.Ref},
		)
	}

	if opts.Sparse && subPath != "" {
		patterns := sparsePatterns(repo.Path(), opts.Ref, subPath, logger)
		if len(patterns) > 0 {
			if err := repo.EnableSparse(patterns...); err != nil {
				return err
			}
		}
	}

	if err := ops.Checkout(ctx, repo.Path(), opts.Ref); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("checkout of %q interrupted: %w", opts.Ref, ctx.Err())
		}
		return platformerrors.WithContextMap(
			platformerrors.Wrapf(err, platformerrors.CodeRefNotFound, "unable to check out ref %q with path %q", opts.Ref, subPath),
			map[string]interface{}{"ref": opts.Ref, "path": subPath},
		)
	}

	ok, err := repo.HasFiles()
	if err != nil {
		return err
	}
	if !ok {
		return platformerrors.WithContextMap(
			platformerrors.Newf(platformerrors.CodeEmptyCheckout, "checkout of ref %q with path %q is empty", opts.Ref, subPath),
			map[string]interface{}{"ref": opts.Ref, "path": subPath},
		)
	}

	return nil
}

// sparsePatterns returns the sparse-checkout patterns for subPath at the
// fetched ref. None are returned when the whole tree must be checked out:
// the ref cannot be read locally, or subPath is missing at the top level.
func sparsePatterns(dir, ref, subPath string, logger *slog.Logger) []string {
	repo, err := Open(dir)
	if err != nil {
		logger.Debug("sparse checkout disabled", "error", err)
		return nil
	}
	kind, err := repo.Entry(ref, subPath)
	if err != nil {
		logger.Debug("sparse checkout disabled", "ref", ref, "error", err)
		return nil
	}
	logger.Debug("sparse checkout", "path", subPath, "kind", kind.String())

	return patternsFor(kind, subPath)
}

func patternsFor(kind EntryKind, subPath string) []string {
	switch kind {
	case EntryFile:
		return []string{"/" + subPath}
	case EntryDir:
		return []string{"/" + subPath + "/*"}
	}

	parent := path.Dir(subPath)
	if parent == "." {
		return nil
	}
	return []string{"/" + parent + "/*"}
}
