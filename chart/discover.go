package chart

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	platformerrors "github.com/jmgilman/helm-git/errors"
)

// Discover returns the charts whose Chart.yaml is root/Chart.yaml or
// root/<dir>/Chart.yaml, sorted by path. A root without charts is a
// NO_CHARTS_FOUND error.
func Discover(root string) ([]Candidate, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInvalidInput, "invalid chart root %q", root)
	}
	return discover(osfs.New("/"), abs)
}

func discover(fs billy.Filesystem, root string) ([]Candidate, error) {
	entries, err := fs.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, noCharts(root)
		}
		return nil, platformerrors.Wrapf(err, platformerrors.CodeInternal, "failed to read %s", root)
	}

	var found []Candidate
	if c, ok := candidate(fs, root); ok {
		found = append(found, c)
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == ".git" {
			continue
		}
		if c, ok := candidate(fs, filepath.Join(root, e.Name())); ok {
			found = append(found, c)
		}
	}

	if len(found) == 0 {
		return nil, noCharts(root)
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].DefinitionPath < found[j].DefinitionPath
	})
	return found, nil
}

func candidate(fs billy.Filesystem, dir string) (Candidate, bool) {
	def := filepath.Join(dir, DefinitionFile)
	info, err := fs.Stat(def)
	if err != nil || !info.Mode().IsRegular() {
		return Candidate{}, false
	}
	return Candidate{
		DefinitionPath: def,
		Dir:            dir,
		Name:           filepath.Base(dir),
	}, true
}

func noCharts(root string) error {
	return platformerrors.WithContext(
		platformerrors.Newf(platformerrors.CodeNoChartsFound, "no %s found in %s", DefinitionFile, root),
		"path", root,
	)
}
