package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// EntryKind is what a path names in a commit.
type EntryKind int

const (
	// EntryMissing means the path does not exist in the commit.
	EntryMissing EntryKind = iota

	// EntryFile is any non-directory entry.
	EntryFile

	// EntryDir is a directory.
	EntryDir
)

func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDir:
		return "directory"
	default:
		return "missing"
	}
}

// Entry reports what p names in the commit ref resolves to. Branches, tags
// (annotated tags are peeled) and commit hashes are accepted. Only objects
// already present locally are read.
func (r *Repository) Entry(ref, p string) (EntryKind, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return EntryMissing, wrapError(err, fmt.Sprintf("failed to resolve %q", ref))
	}

	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return EntryMissing, wrapError(err, fmt.Sprintf("failed to read commit %s", hash))
	}
	tree, err := commit.Tree()
	if err != nil {
		return EntryMissing, wrapError(err, fmt.Sprintf("failed to read tree of %s", hash))
	}

	p = strings.Trim(p, "/")
	if p == "" {
		return EntryDir, nil
	}

	// A file in the middle of p surfaces as a missing tree object.
	entry, err := tree.FindEntry(p)
	if errors.Is(err, object.ErrEntryNotFound) ||
		errors.Is(err, object.ErrDirectoryNotFound) ||
		errors.Is(err, plumbing.ErrObjectNotFound) {
		return EntryMissing, nil
	}
	if err != nil {
		return EntryMissing, wrapError(err, fmt.Sprintf("failed to look up %q", p))
	}

	if entry.Mode == filemode.Dir {
		return EntryDir, nil
	}
	return EntryFile, nil
}
