package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/config"
	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/generator"
	"github.com/deicod/scaffolder/internal/observability/tracing"
)

var blueprints = generator.NewBlueprintRegistry()

// RegisterBlueprint makes bp selectable through the blueprint setting of
// scaffolder.yaml.
func RegisterBlueprint(bp generator.Blueprint) error {
	return blueprints.Register(bp)
}

type project struct {
	env    generator.Env
	store  *entity.DirRepository
	logger *zap.Logger
}

func loadProject(cmd *cobra.Command, opts *rootOptions) (*project, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	app, err := config.Load(opts.dir)
	if err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return nil, wrapError(fmt.Sprintf("config: %v", err), err, "Fix scaffolder.yaml or the SCAFFOLDER_* environment overrides.", 2)
		}
		return nil, wrapError(fmt.Sprintf("config: %v", err), err, "Check that scaffolder.yaml is valid YAML.", 1)
	}
	store := entity.NewDirRepository(entitiesDir(opts.dir, app), logger)
	logger.Debug("project loaded", zap.String("root", opts.dir), zap.String("entities", store.Dir()))
	return &project{
		env: generator.Env{
			Root:       opts.dir,
			App:        app,
			Store:      store,
			Blueprints: blueprints,
			Builder:    generator.CommandBuilder{Stdout: cmd.ErrOrStderr(), Stderr: cmd.ErrOrStderr()},
			Stdout:     cmd.OutOrStdout(),
			Logger:     logger,
			Tracer:     tracing.NewOTelTracer(nil),
		},
		store:  store,
		logger: logger,
	}, nil
}

func entitiesDir(root string, app config.App) string {
	if filepath.IsAbs(app.EntitiesDir) {
		return app.EntitiesDir
	}
	return filepath.Join(root, app.EntitiesDir)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeFileOnce(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	return true, os.WriteFile(path, content, 0o644)
}
