package testutil

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryRepo(t *testing.T) {
	repo, fs, err := NewMemoryRepo()
	require.NoError(t, err)
	require.NotNil(t, repo)
	require.NotNil(t, fs)

	stat, err := fs.Stat("/.git")
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestCommitAndTag(t *testing.T) {
	repo, _, err := NewMemoryRepo()
	require.NoError(t, err)

	hash, err := Commit(repo, "Initial commit", map[string]string{
		"charts/app/Chart.yaml": TestAppChart,
	})
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	require.NoError(t, Tag(repo, "light", hash, ""))
	require.NoError(t, Tag(repo, "annotated", hash, TestTagMessage))

	light, err := repo.Underlying().Reference(plumbing.NewTagReferenceName("light"), false)
	require.NoError(t, err)
	assert.Equal(t, hash, light.Hash().String())

	annotated, err := repo.Underlying().Reference(plumbing.NewTagReferenceName("annotated"), false)
	require.NoError(t, err)
	tagObj, err := repo.Underlying().TagObject(annotated.Hash())
	require.NoError(t, err)
	assert.Equal(t, hash, tagObj.Target.String())
}

func TestNewChartRepo(t *testing.T) {
	fixture := NewChartRepo(t)

	assert.Equal(t, "file://"+fixture.Path, fixture.URL)
	assert.NotEqual(t, fixture.Initial, fixture.Develop)

	for _, tag := range []string{TestTagLightweight, TestTagAnnotated} {
		ok, err := fixture.Repo.HasTag(tag)
		require.NoError(t, err)
		assert.True(t, ok, tag)
	}

	head, err := fixture.Repo.Underlying().Head()
	require.NoError(t, err)
	assert.Equal(t, plumbing.NewBranchReferenceName(TestBranchMain), head.Name())

	_, err = fixture.Repo.Filesystem().Stat("charts/extra/Chart.yaml")
	assert.Error(t, err, "develop-only chart must not be in the master working tree")
}
