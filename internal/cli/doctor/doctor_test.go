package doctor

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, found bool) {
	t.Helper()
	original := lookPath
	lookPath = func(file string) (string, error) {
		if !found {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + file, nil
	}
	t.Cleanup(func() { lookPath = original })
}

func byName(results []Result) map[string]Result {
	out := make(map[string]Result, len(results))
	for _, res := range results {
		out[res.Name] = res
	}
	return out
}

func TestRunOnEmptyDirectory(t *testing.T) {
	stubLookPath(t, false)

	results := byName(Run(t.TempDir(), nil))

	assert.Equal(t, StatusWarn, results["scaffolder.yaml"].Status)
	assert.Equal(t, StatusWarn, results["entities directory"].Status)
	assert.Equal(t, StatusWarn, results["client package manager"].Status)
	assert.Equal(t, StatusOK, results["blueprint"].Status)
	assert.False(t, HasFailures(Run(t.TempDir(), nil)))
}

func TestRunOnConfiguredProject(t *testing.T) {
	stubLookPath(t, true)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffolder.yaml"), []byte("base_name: shop\nclient_package_manager: yarn\nblueprint: custom\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "entities"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entities", "Order.json"), []byte(`{"name":"Order"}`), 0o644))

	results := byName(Run(dir, []string{"custom"}))

	assert.Equal(t, Result{Name: "scaffolder.yaml", Status: StatusOK, Details: "base_name=shop"}, results["scaffolder.yaml"])
	assert.Equal(t, "1 entity definitions", results["entities directory"].Details)
	assert.Equal(t, "yarn (/usr/bin/yarn)", results["client package manager"].Details)
	assert.Equal(t, StatusOK, results["blueprint"].Status)
}

func TestRunFlagsInvalidSetup(t *testing.T) {
	stubLookPath(t, true)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffolder.yaml"), []byte("database_type: nope\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entities"), []byte("not a dir"), 0o644))

	results := Run(dir, nil)

	byStatus := byName(results)
	assert.Equal(t, StatusError, byStatus["scaffolder.yaml"].Status)
	assert.Equal(t, StatusError, byStatus["entities directory"].Status)
	assert.True(t, HasFailures(results))
}

func TestPrinterSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	p := NewPrinter(buf)
	results := []Result{
		{Name: "scaffolder.yaml", Status: StatusOK},
		{Name: "blueprint", Status: StatusError, Details: "missing"},
	}
	for _, res := range results {
		p.PrintCheck(res)
	}
	p.Summary(results)

	assert.Contains(t, buf.String(), "[OK]")
	assert.Contains(t, buf.String(), "blueprint - missing")
	assert.Contains(t, buf.String(), "Summary: 1 ok, 0 warnings, 1 errors")
	assert.Contains(t, buf.String(), "re-run 'scaffolder doctor'")
}
