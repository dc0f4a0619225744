// Package doctor runs the environment checks behind `scaffolder doctor`.
package doctor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/deicod/scaffolder/internal/config"
	"github.com/deicod/scaffolder/internal/entity"
)

// Result captures the outcome of a single diagnostic check.
type Result struct {
	Name    string
	Status  Status
	Details string
}

type Status string

const (
	StatusOK    Status = "ok"
	StatusWarn  Status = "warn"
	StatusError Status = "error"
)

var lookPath = exec.LookPath

// Run executes every check against the project in root. blueprints lists the
// registered blueprint names.
func Run(root string, blueprints []string) []Result {
	app, cfg := checkConfig(root)
	return []Result{
		cfg,
		checkEntitiesDir(root, app),
		checkPackageManager(app),
		checkBlueprint(app, blueprints),
	}
}

// HasFailures reports whether any check ended in an error.
func HasFailures(results []Result) bool {
	for _, res := range results {
		if res.Status == StatusError {
			return true
		}
	}
	return false
}

func checkConfig(root string) (config.App, Result) {
	name := config.FileName + ".yaml"
	info, err := os.Stat(filepath.Join(root, name))
	switch {
	case err == nil && info.IsDir():
		return config.Default(), Result{Name: name, Status: StatusError, Details: "expected file but found directory"}
	case errors.Is(err, os.ErrNotExist):
		return config.Default(), Result{Name: name, Status: StatusWarn, Details: "config missing; run 'scaffolder init'"}
	case err != nil:
		return config.Default(), Result{Name: name, Status: StatusError, Details: err.Error()}
	}
	app, err := config.Load(root)
	if err != nil {
		return config.Default(), Result{Name: name, Status: StatusError, Details: err.Error()}
	}
	return app, Result{Name: name, Status: StatusOK, Details: "base_name=" + app.BaseName}
}

func checkEntitiesDir(root string, app config.App) Result {
	const name = "entities directory"
	dir := app.EntitiesDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Result{Name: name, Status: StatusWarn, Details: fmt.Sprintf("missing %s/; run 'scaffolder init'", app.EntitiesDir)}
	}
	if err != nil {
		return Result{Name: name, Status: StatusError, Details: err.Error()}
	}
	if !info.IsDir() {
		return Result{Name: name, Status: StatusError, Details: app.EntitiesDir + " exists but is not a directory"}
	}
	names, err := entity.NewDirRepository(dir, nil).Names()
	if err != nil {
		return Result{Name: name, Status: StatusError, Details: err.Error()}
	}
	if len(names) == 0 {
		return Result{Name: name, Status: StatusWarn, Details: "no entity definitions found; run 'scaffolder new <Entity>'"}
	}
	return Result{Name: name, Status: StatusOK, Details: fmt.Sprintf("%d entity definitions", len(names))}
}

func checkPackageManager(app config.App) Result {
	const name = "client package manager"
	if app.SkipClient {
		return Result{Name: name, Status: StatusOK, Details: "client generation disabled"}
	}
	path, err := lookPath(app.ClientPackageManager)
	if err != nil {
		return Result{Name: name, Status: StatusWarn, Details: fmt.Sprintf("%s not found in PATH; use --skip-install", app.ClientPackageManager)}
	}
	return Result{Name: name, Status: StatusOK, Details: fmt.Sprintf("%s (%s)", app.ClientPackageManager, path)}
}

func checkBlueprint(app config.App, registered []string) Result {
	const name = "blueprint"
	switch {
	case app.Blueprint == "":
		return Result{Name: name, Status: StatusOK, Details: "none"}
	case slices.Contains(registered, app.Blueprint):
		return Result{Name: name, Status: StatusOK, Details: app.Blueprint}
	}
	return Result{Name: name, Status: StatusError, Details: fmt.Sprintf("blueprint %q is not registered", app.Blueprint)}
}
