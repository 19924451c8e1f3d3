package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/helm-git/git/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "HELM_GIT_") {
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	t.Setenv("HELM_GIT_TMPDIR", t.TempDir())
}

func TestRun_ArgumentErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"cert", "git+https://github.com/org/charts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), tt.args, &stdout, &stderr)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.True(t, strings.HasPrefix(stderr.String(), "helm-git: "))
		})
	}
}

func TestRun_InvalidURI(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"", "", "", "git+ftp://example.com/repo"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "helm-git: [DISALLOWED_PROTOCOL]")
	assert.NotContains(t, stderr.String(), "retrying may succeed")
	assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
}

func TestRun_UnreachableRemoteIsRetryable(t *testing.T) {
	testutil.RequireGit(t)
	isolate(t)
	var stdout, stderr bytes.Buffer

	raw := "git+file://" + filepath.Join(t.TempDir(), "missing") + "@charts?ref=v1.0.0"
	code := run(context.Background(), []string{raw}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "[REMOTE_UNREACHABLE]")
	assert.Contains(t, stderr.String(), "(temporary, retrying may succeed)")
}

func TestRun_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("HELM_GIT_DEPENDENCY_MAX_DEPTH", "-1")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"git+https://github.com/org/charts"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "INVALID_CONFIG")
}

func TestRun_MissingEnvFile(t *testing.T) {
	isolate(t)
	t.Setenv("HELM_GIT_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"git+https://github.com/org/charts"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "helm-git: [INVALID_CONFIG]")
}

func TestRun_SingleFile(t *testing.T) {
	testutil.RequireGit(t)
	isolate(t)
	fixture := testutil.NewChartRepo(t)

	envFile := filepath.Join(t.TempDir(), "helm-git.env")
	cache := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, os.WriteFile(envFile, []byte("HELM_GIT_CHART_CACHE="+cache+"\n"), 0o644))
	t.Setenv("HELM_GIT_ENV_FILE", envFile)
	t.Setenv("HELM_GIT_CHART_CACHE", "")
	require.NoError(t, os.Unsetenv("HELM_GIT_CHART_CACHE"))

	raw := "git+" + fixture.URL + "@charts/index.yaml?ref=" + testutil.TestTagLightweight
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"", "", "", raw}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, testutil.TestIndexContent, stdout.String())
	assert.DirExists(t, cache)
}
