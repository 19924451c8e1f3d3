package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

// sparseCheckoutFile is the pattern file git reads when core.sparseCheckout
// is enabled, relative to the working tree.
const sparseCheckoutFile = ".git/info/sparse-checkout"

// EnableSparse turns on sparse checkout and writes patterns to the pattern
// file. It must run before the first checkout to limit what is materialized.
func (r *Repository) EnableSparse(patterns ...string) error {
	if r.bare {
		return wrapError(fmt.Errorf("repository at %s is bare", r.path), "failed to enable sparse checkout")
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return wrapError(err, "failed to read repository config")
	}
	cfg.Raw.Section("core").SetOption("sparseCheckout", "true")
	if err := r.repo.Storer.SetConfig(cfg); err != nil {
		return wrapError(err, "failed to write repository config")
	}

	content := strings.Join(patterns, "\n") + "\n"
	if err := util.WriteFile(r.fs, sparseCheckoutFile, []byte(content), 0o644); err != nil {
		return wrapError(err, "failed to write sparse-checkout patterns")
	}

	return nil
}

// HasFiles reports whether the working tree holds anything besides .git.
func (r *Repository) HasFiles() (bool, error) {
	entries, err := r.fs.ReadDir(".")
	if err != nil {
		return false, wrapError(err, "failed to read working tree")
	}

	for _, entry := range entries {
		if entry.Name() != ".git" {
			return true, nil
		}
	}

	return false, nil
}
