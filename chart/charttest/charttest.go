// Package charttest provides a chart.Tool that emulates helm on the local
// filesystem, for tests that run the chart pipeline without a helm binary.
package charttest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmgilman/helm-git/chart"
	platformerrors "github.com/jmgilman/helm-git/errors"
	"github.com/jmgilman/helm-git/helm"
	helmchart "helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/repo"
	"sigs.k8s.io/yaml"
)

// Tool emulates the helm commands used by the pipeline:
//
//   - ShowChart parses <dir>/Chart.yaml
//   - Package writes <dest>/<name>-<version>.tgz
//   - RepoIndex writes an index.yaml listing every *.tgz in the directory
//
// Setting Fail[step] makes the matching operation return that error.
type Tool struct {
	// Fail maps a step (helm.StepInspect, ...) to the error it returns.
	Fail map[string]error

	// BrokenIndex makes RepoIndex write an index without apiVersion.
	BrokenIndex bool

	mu     sync.Mutex
	calls  []string
	guards []helm.Guard
}

var _ chart.Tool = (*Tool)(nil)

// Calls returns the recorded operations as "<step> <path>".
func (t *Tool) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.calls...)
}

// Guards returns the guards passed to DependencyUpdate.
func (t *Tool) Guards() []helm.Guard {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]helm.Guard(nil), t.guards...)
}

func (t *Tool) record(step, path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, step+" "+path)
	if err, ok := t.Fail[step]; ok {
		return platformerrors.WrapWithContext(err, platformerrors.CodeToolFailure,
			"helm "+step+" failed", map[string]interface{}{"step": step, "path": path})
	}
	return nil
}

func (t *Tool) ShowChart(_ context.Context, dir string) (*helmchart.Metadata, error) {
	if err := t.record(helm.StepInspect, dir); err != nil {
		return nil, err
	}
	return readMetadata(dir)
}

func (t *Tool) DependencyUpdate(_ context.Context, dir string, guard helm.Guard) error {
	if err := t.record(helm.StepDependency, dir); err != nil {
		return err
	}
	t.mu.Lock()
	t.guards = append(t.guards, guard)
	t.mu.Unlock()
	return os.MkdirAll(filepath.Join(dir, "charts"), 0o755)
}

func (t *Tool) Package(_ context.Context, dir, dest string) error {
	if err := t.record(helm.StepPackage, dir); err != nil {
		return err
	}
	md, err := readMetadata(dir)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s-%s.tgz", md.Name, md.Version)
	return os.WriteFile(filepath.Join(dest, name), []byte("archive "+name), 0o644)
}

func (t *Tool) RepoIndex(_ context.Context, dir, url string) error {
	if err := t.record(helm.StepIndex, dir); err != nil {
		return err
	}
	path := filepath.Join(dir, chart.IndexFile)
	if t.BrokenIndex {
		return os.WriteFile(path, []byte("entries: {}\n"), 0o644)
	}

	index := repo.NewIndexFile()
	archives, err := filepath.Glob(filepath.Join(dir, "*.tgz"))
	if err != nil {
		return err
	}
	for _, a := range archives {
		file := filepath.Base(a)
		md := ArchiveMetadata(file)
		if err := index.MustAdd(md, file, url, "sha256:0000"); err != nil {
			return err
		}
	}
	index.SortEntries()
	return index.WriteFile(path, 0o644)
}

// ArchiveMetadata derives chart metadata from an archive name of the form
// <name>-<version>.tgz.
func ArchiveMetadata(file string) *helmchart.Metadata {
	base := strings.TrimSuffix(file, ".tgz")
	name, version := base, "0.0.0"
	if i := strings.LastIndex(base, "-"); i > 0 {
		name, version = base[:i], base[i+1:]
	}
	return &helmchart.Metadata{APIVersion: helmchart.APIVersionV2, Name: name, Version: version}
}

func readMetadata(dir string) (*helmchart.Metadata, error) {
	data, err := os.ReadFile(filepath.Join(dir, chart.DefinitionFile))
	if err != nil {
		return nil, err
	}
	var md helmchart.Metadata
	if err := yaml.Unmarshal(data, &md); err != nil {
		return nil, err
	}
	return &md, nil
}
