package resolver

import (
	"log/slog"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	platformerrors "github.com/jmgilman/helm-git/errors"
)

// workspace is the scratch directory of a single request.
type workspace struct {
	fs     billy.Filesystem
	path   string
	logger *slog.Logger
}

// newWorkspace creates a uniquely named workspace below base.
func newWorkspace(fs billy.Filesystem, base string, logger *slog.Logger) (*workspace, error) {
	if err := fs.MkdirAll(base, 0o755); err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to create %s", base)
	}
	path, err := util.TempDir(fs, base, "helm-git-")
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInternal, "failed to create workspace")
	}
	logger.Debug("created workspace", "path", path)
	return &workspace{fs: fs, path: path, logger: logger}, nil
}

// Path returns the workspace directory.
func (w *workspace) Path() string {
	return w.path
}

// Subdir creates a directory inside the workspace.
func (w *workspace) Subdir(name string) (string, error) {
	dir := filepath.Join(w.path, name)
	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return "", platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to create %s", dir)
	}
	return dir, nil
}

// Cleanup removes the workspace and everything in it.
func (w *workspace) Cleanup() {
	if err := util.RemoveAll(w.fs, w.path); err != nil {
		w.logger.Warn("failed to remove workspace", "path", w.path, "error", err)
		return
	}
	w.logger.Debug("removed workspace", "path", w.path)
}
