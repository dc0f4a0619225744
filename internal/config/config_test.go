package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	app, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "app", app.BaseName)
	assert.Equal(t, "monolith", app.ApplicationType)
	assert.Equal(t, "sql", app.DatabaseType)
	assert.Equal(t, "postgresql", app.ProdDatabaseType)
	assert.Equal(t, "jhi", app.JhiPrefix)
	assert.Equal(t, "npm", app.ClientPackageManager)
	assert.Equal(t, []string{"en"}, app.Languages)
	assert.Equal(t, "entities", app.EntitiesDir)
	assert.Equal(t, "com/mycompany/myapp", app.PackageFolder())
}

func TestLoadReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `base_name: store
application_type: microservice
authentication_type: oauth2
prod_database_type: mysql
package_name: com.example.store
languages: [en, fr]
blueprint: kotlin
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffolder.yaml"), []byte(content), 0o644))

	app, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "store", app.BaseName)
	assert.Equal(t, "microservice", app.ApplicationType)
	assert.Equal(t, "oauth2", app.AuthenticationType)
	assert.Equal(t, "mysql", app.ProdDatabaseType)
	assert.Equal(t, []string{"en", "fr"}, app.Languages)
	assert.Equal(t, "kotlin", app.Blueprint)
	assert.Equal(t, "com/example/store", app.PackageFolder())
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCAFFOLDER_BASE_NAME", "inventory")
	t.Setenv("SCAFFOLDER_SKIP_CLIENT", "true")

	app, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "inventory", app.BaseName)
	assert.True(t, app.SkipClient)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffolder.yaml"), []byte("database_type: graph\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "database_type")
}

func TestLoadReportsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scaffolder.yaml"), []byte("base_name: [unterminated\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	app := Default()
	require.NoError(t, Validate(app))

	bad := app
	bad.BaseName = "1app"
	assert.ErrorIs(t, Validate(bad), ErrInvalidConfig)

	bad = app
	bad.PackageName = "Com.Example"
	assert.ErrorIs(t, Validate(bad), ErrInvalidConfig)

	bad = app
	bad.Languages = nil
	assert.ErrorIs(t, Validate(bad), ErrInvalidConfig)

	bad.EnableTranslation = false
	assert.NoError(t, Validate(bad))
}
