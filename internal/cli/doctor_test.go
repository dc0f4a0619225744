package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCmdReportsChecks(t *testing.T) {
	out, _, err := runCLI(t, "-C", newProjectDir(t), "doctor")
	require.NoError(t, err)

	assert.Contains(t, out, "scaffolder doctor")
	assert.Contains(t, out, "scaffolder.yaml - base_name=store")
	assert.Contains(t, out, "entities directory - 2 entity definitions")
	assert.Contains(t, out, "client package manager")
	assert.Contains(t, out, "Summary:")
}

func TestDoctorCmdFailsOnUnknownBlueprint(t *testing.T) {
	dir := newProjectDir(t)
	writeFile(t, filepath.Join(dir, "scaffolder.yaml"), "base_name: store\nblueprint: vue\n")

	out, _, err := runCLI(t, "-C", dir, "doctor")
	requireCommandError(t, err, 1)
	assert.Contains(t, out, `blueprint "vue" is not registered`)
}
