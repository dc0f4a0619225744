// Package config loads the application settings shared by every entity of a project.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the base name of the project configuration file.
const FileName = "scaffolder"

// ErrInvalidConfig marks configuration values that cannot drive generation.
var ErrInvalidConfig = errors.New("invalid configuration")

// App holds the application-wide naming and platform settings.
type App struct {
	BaseName             string   `mapstructure:"base_name"`
	ApplicationType      string   `mapstructure:"application_type"`
	AuthenticationType   string   `mapstructure:"authentication_type"`
	DatabaseType         string   `mapstructure:"database_type"`
	ProdDatabaseType     string   `mapstructure:"prod_database_type"`
	JhiPrefix            string   `mapstructure:"jhi_prefix"`
	Reactive             bool     `mapstructure:"reactive"`
	PackageName          string   `mapstructure:"package_name"`
	ClientFramework      string   `mapstructure:"client_framework"`
	ClientPackageManager string   `mapstructure:"client_package_manager"`
	EnableTranslation    bool     `mapstructure:"enable_translation"`
	Languages            []string `mapstructure:"languages"`
	SkipClient           bool     `mapstructure:"skip_client"`
	SkipServer           bool     `mapstructure:"skip_server"`
	SkipUIGrouping       bool     `mapstructure:"skip_ui_grouping"`
	Blueprint            string   `mapstructure:"blueprint"`
	EntitiesDir          string   `mapstructure:"entities_dir"`
}

// PackageFolder returns the package name as a slash separated path.
func (a App) PackageFolder() string {
	return strings.ReplaceAll(a.PackageName, ".", "/")
}

var defaults = map[string]any{
	"base_name":              "app",
	"application_type":       "monolith",
	"authentication_type":    "jwt",
	"database_type":          "sql",
	"prod_database_type":     "postgresql",
	"jhi_prefix":             "jhi",
	"reactive":               false,
	"package_name":           "com.mycompany.myapp",
	"client_framework":       "angularX",
	"client_package_manager": "npm",
	"enable_translation":     true,
	"languages":              []string{"en"},
	"skip_client":            false,
	"skip_server":            false,
	"skip_ui_grouping":       false,
	"blueprint":              "",
	"entities_dir":           "entities",
}

// Default returns the settings used when no configuration file exists.
func Default() App {
	app, err := decode(newViper(""))
	if err != nil {
		panic(err)
	}
	return app
}

// Load reads scaffolder.yaml from root, applying SCAFFOLDER_* environment
// overrides on top of the defaults.
func Load(root string) (App, error) {
	v := newViper(root)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return App{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	app, err := decode(v)
	if err != nil {
		return App{}, err
	}
	if err := Validate(app); err != nil {
		return App{}, err
	}
	return app, nil
}

func newViper(root string) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	if root != "" {
		v.AddConfigPath(root)
	}
	v.SetEnvPrefix("SCAFFOLDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (App, error) {
	var app App
	if err := v.Unmarshal(&app); err != nil {
		return App{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return app, nil
}

var (
	baseNamePattern    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	packageNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)*$`)

	applicationTypes   = []string{"monolith", "microservice", "gateway", "uaa"}
	databaseTypes      = []string{"sql", "mongodb", "cassandra", "couchbase", "no"}
	clientFrameworks   = []string{"angularX", "react"}
	clientPackageTools = []string{"npm", "yarn"}
)

// Validate checks that app can drive generation.
func Validate(app App) error {
	switch {
	case !baseNamePattern.MatchString(app.BaseName):
		return fmt.Errorf("%w: base_name %q must start with a letter and contain only letters, digits, '-' or '_'", ErrInvalidConfig, app.BaseName)
	case !slices.Contains(applicationTypes, app.ApplicationType):
		return fmt.Errorf("%w: application_type %q must be one of %s", ErrInvalidConfig, app.ApplicationType, strings.Join(applicationTypes, ", "))
	case !slices.Contains(databaseTypes, app.DatabaseType):
		return fmt.Errorf("%w: database_type %q must be one of %s", ErrInvalidConfig, app.DatabaseType, strings.Join(databaseTypes, ", "))
	case !slices.Contains(clientFrameworks, app.ClientFramework):
		return fmt.Errorf("%w: client_framework %q must be one of %s", ErrInvalidConfig, app.ClientFramework, strings.Join(clientFrameworks, ", "))
	case !slices.Contains(clientPackageTools, app.ClientPackageManager):
		return fmt.Errorf("%w: client_package_manager %q must be one of %s", ErrInvalidConfig, app.ClientPackageManager, strings.Join(clientPackageTools, ", "))
	case !packageNamePattern.MatchString(app.PackageName):
		return fmt.Errorf("%w: package_name %q is not a valid Java package", ErrInvalidConfig, app.PackageName)
	case app.EnableTranslation && len(app.Languages) == 0:
		return fmt.Errorf("%w: languages must not be empty when enable_translation is set", ErrInvalidConfig)
	case strings.TrimSpace(app.EntitiesDir) == "":
		return fmt.Errorf("%w: entities_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
