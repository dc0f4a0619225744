package generator

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBuilderRunsWebpackBuild(t *testing.T) {
	var gotName string
	var gotArgs []string
	prev := execCommand
	execCommand = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName, gotArgs = name, args
		return exec.CommandContext(ctx, os.Args[0], "-test.run=^$")
	}
	t.Cleanup(func() { execCommand = prev })

	dir := t.TempDir()
	require.NoError(t, CommandBuilder{}.Build(context.Background(), dir, "yarn"))
	assert.Equal(t, "yarn", gotName)
	assert.Equal(t, []string{"run", "webpack:build"}, gotArgs)

	require.NoError(t, CommandBuilder{}.Build(context.Background(), dir, ""))
	assert.Equal(t, "npm", gotName)
}

func TestCommandBuilderWrapsFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing-binary")
	prev := execCommand
	execCommand = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, missing)
	}
	t.Cleanup(func() { execCommand = prev })

	err := CommandBuilder{}.Build(context.Background(), t.TempDir(), "pnpm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pnpm run webpack:build")
}
