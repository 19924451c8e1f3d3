package testutil

import (
	osexec "os/exec"
	"path/filepath"
	"testing"

	"github.com/jmgilman/helm-git/git"
)

// ChartRepo is an on-disk fixture repository.
type ChartRepo struct {
	// Path is the repository directory.
	Path string

	// URL is the file:// URL of Path.
	URL string

	// Initial is the master commit, tagged with TestTagLightweight and
	// TestTagAnnotated.
	Initial string

	// Develop is the develop branch commit.
	Develop string

	// Repo is the opened repository.
	Repo *git.Repository
}

// NewChartRepo creates an on-disk repository in a temporary directory with
// the ChartFiles tree on master, both test tags on that commit and a develop
// branch that adds charts/extra. The working tree is left on master.
func NewChartRepo(t testing.TB) *ChartRepo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "charts-repo")
	repo, err := git.Init(path)
	if err != nil {
		t.Fatalf("failed to init fixture repository: %v", err)
	}

	initial, err := Commit(repo, "Initial commit", ChartFiles)
	if err != nil {
		t.Fatalf("failed to commit fixture tree: %v", err)
	}

	if err := Tag(repo, TestTagLightweight, initial, ""); err != nil {
		t.Fatalf("failed to create lightweight tag: %v", err)
	}
	if err := Tag(repo, TestTagAnnotated, initial, TestTagMessage); err != nil {
		t.Fatalf("failed to create annotated tag: %v", err)
	}

	if err := Branch(repo, TestBranchDevelop, initial); err != nil {
		t.Fatalf("failed to create develop branch: %v", err)
	}
	if err := Checkout(repo, TestBranchDevelop); err != nil {
		t.Fatalf("failed to switch to develop: %v", err)
	}
	develop, err := Commit(repo, "Add extra chart", map[string]string{
		"charts/extra/Chart.yaml": TestExtraChart,
	})
	if err != nil {
		t.Fatalf("failed to commit develop tree: %v", err)
	}
	if err := Checkout(repo, TestBranchMain); err != nil {
		t.Fatalf("failed to switch back to master: %v", err)
	}

	return &ChartRepo{
		Path:    path,
		URL:     "file://" + path,
		Initial: initial,
		Develop: develop,
		Repo:    repo,
	}
}

// RequireGit skips the test when the git binary is not on PATH.
func RequireGit(t testing.TB) {
	t.Helper()

	if _, err := osexec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}
