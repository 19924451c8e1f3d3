package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// HasTag reports whether refs/tags/<name> exists locally. Both lightweight
// and annotated tags are found; no network access is made.
//
// Tags are treated as immutable, so a local hit means the repository already
// holds the content for that ref.
func (r *Repository) HasTag(name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	_, err := r.repo.Reference(plumbing.NewTagReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrapError(err, fmt.Sprintf("failed to look up tag %q", name))
	}

	return true, nil
}
