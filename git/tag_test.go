package git

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSignature returns the signature used for test commits and tags.
func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// createTestRepoWithCommit creates an in-memory repository with one commit.
func createTestRepoWithCommit(t *testing.T) (*Repository, plumbing.Hash) {
	t.Helper()

	repo := createTestRepository(t)
	require.NoError(t, util.WriteFile(repo.Filesystem(), "Chart.yaml", []byte("name: app\n"), 0o644))

	wt, err := repo.Underlying().Worktree()
	require.NoError(t, err)
	_, err = wt.Add("Chart.yaml")
	require.NoError(t, err)

	hash, err := wt.Commit("Initial commit", &gogit.CommitOptions{Author: testSignature()})
	require.NoError(t, err)

	return repo, hash
}

func TestHasTag(t *testing.T) {
	repo, hash := createTestRepoWithCommit(t)

	_, err := repo.Underlying().CreateTag("v1.0.0", hash, nil)
	require.NoError(t, err)
	_, err = repo.Underlying().CreateTag("v1.1.0", hash, &gogit.CreateTagOptions{
		Tagger:  testSignature(),
		Message: "Release version 1.1.0",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "lightweight", tag: "v1.0.0", want: true},
		{name: "annotated", tag: "v1.1.0", want: true},
		{name: "missing", tag: "v2.0.0", want: false},
		{name: "branch is not a tag", tag: "master", want: false},
		{name: "empty", tag: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := repo.HasTag(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
