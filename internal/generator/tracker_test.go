package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deicod/scaffolder/internal/observability/metrics"
)

func TestOutputSkipsIdenticalFiles(t *testing.T) {
	root := t.TempDir()
	rec := metrics.NewRecorder()

	out := NewOutput(root, Options{}, rec, nil)
	require.NoError(t, out.Write("entity-server", "src/a.txt", []byte("one")))
	assert.Equal(t, []string{"src/a.txt"}, out.Files("entity-server"))

	again := NewOutput(root, Options{}, rec, nil)
	require.NoError(t, again.Write("entity-server", "src/a.txt", []byte("one")))
	assert.Empty(t, again.Files("entity-server"))

	forced := NewOutput(root, Options{Force: true}, rec, nil)
	require.NoError(t, forced.Write("entity-server", "src/a.txt", []byte("one")))
	assert.Equal(t, []string{"src/a.txt"}, forced.Files("entity-server"))

	assert.Equal(t, 2, rec.Files(metrics.FileWritten))
	assert.Equal(t, 1, rec.Files(metrics.FileUnchanged))
}

func TestOutputDryRunLeavesDiskAlone(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "same.txt"), []byte("same"), 0o644))

	out := NewOutput(root, Options{DryRun: true}, nil, nil)
	require.NoError(t, out.Write("entity-client", "nested/new.txt", []byte("new")))
	require.NoError(t, out.Write("entity-client", "same.txt", []byte("same")))

	assert.True(t, out.DryRun())
	assert.Equal(t, map[string][]string{"entity-client": {"nested/new.txt"}}, out.All())
	_, err := os.Stat(filepath.Join(root, "nested"))
	assert.True(t, os.IsNotExist(err))
}

func TestOutputRejectsEscapingPaths(t *testing.T) {
	out := NewOutput(t.TempDir(), Options{}, nil, nil)
	assert.Error(t, out.Write("entity-client", "../outside.txt", []byte("x")))
	assert.Error(t, out.Write("entity-client", "/etc/passwd", []byte("x")))
}
