package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "app")
	writeTree(t, src, map[string]string{
		"Chart.yaml":                "name: app\n",
		"templates/deployment.yaml": "kind: Deployment\n",
		".git/HEAD":                 "ref: refs/heads/master\n",
	})
	require.NoError(t, os.Chmod(filepath.Join(src, "Chart.yaml"), 0o600))
	require.NoError(t, os.Symlink("Chart.yaml", filepath.Join(src, "link.yaml")))

	dst := filepath.Join(t.TempDir(), "copy")
	require.NoError(t, copyDir(osfs.New("/"), src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "templates", "deployment.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "kind: Deployment\n", string(data))

	info, err := os.Stat(filepath.Join(dst, "Chart.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	link, err := os.Readlink(filepath.Join(dst, "link.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Chart.yaml", link)

	assert.NoDirExists(t, filepath.Join(dst, ".git"))
}
