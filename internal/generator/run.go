package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/config"
	"github.com/deicod/scaffolder/internal/derive"
	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/naming"
	"github.com/deicod/scaffolder/internal/observability/metrics"
	"github.com/deicod/scaffolder/internal/observability/tracing"
)

// ErrEntityNotFound is returned when no definition exists for the requested entity.
var ErrEntityNotFound = errors.New("entity not found")

// Options are the per-run switches exposed on the command line.
type Options struct {
	Force       bool
	DryRun      bool
	SkipInstall bool
	SkipClient  bool
	SkipServer  bool
}

// Deps is what every sub-generator, built-in or blueprint, receives.
type Deps struct {
	Root    string
	App     config.App
	Repo    entity.Repository
	Output  *Output
	Builder ClientBuilder
	Stdout  io.Writer
	Logger  *zap.Logger
	Options Options
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Deps) stdout() io.Writer {
	if d.Stdout == nil {
		return io.Discard
	}
	return d.Stdout
}

// Env carries the project-wide collaborators shared by consecutive runs.
type Env struct {
	Root       string
	App        config.App
	Store      entity.Store
	Blueprints *BlueprintRegistry
	Builder    ClientBuilder
	Stdout     io.Writer
	Logger     *zap.Logger
	Tracer     tracing.Tracer
	Metrics    metrics.Collector
	Now        func() time.Time
}

func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Stdout == nil {
		e.Stdout = io.Discard
	}
	if e.Tracer == nil {
		e.Tracer = tracing.NoopTracer{}
	}
	e.Metrics = metrics.WithCollector(e.Metrics)
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

// Result summarizes one generation run.
type Result struct {
	RunID   string
	Entity  string
	DryRun  bool
	Context *entity.Context
	// Files maps each generator name to the paths it wrote or would write.
	Files map[string][]string
}

// FileCount returns the number of paths across all generators.
func (r Result) FileCount() int {
	n := 0
	for _, files := range r.Files {
		n += len(files)
	}
	return n
}

// Generate loads the named entity, composes the server and client
// generators (or their blueprint replacements), and runs the lifecycle.
func Generate(ctx context.Context, env Env, name string, opts Options) (Result, error) {
	env = env.withDefaults()
	runID := uuid.NewString()
	logger := env.Logger.With(zap.String("run_id", runID), zap.String("entity", naming.UpperFirst(name)))

	entityCtx, err := Prepare(env, name)
	if err != nil {
		return Result{}, err
	}

	output := NewOutput(env.Root, opts, env.Metrics, logger)
	deps := Deps{
		Root:    env.Root,
		App:     env.App,
		Repo:    env.Store,
		Output:  output,
		Builder: env.Builder,
		Stdout:  env.Stdout,
		Logger:  logger,
		Options: opts,
	}
	gens, err := compose(entityCtx, deps, env.Blueprints)
	if err != nil {
		return Result{}, err
	}

	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Name()
	}
	logger.Info("generating entity", zap.Strings("generators", names), zap.Bool("dry_run", opts.DryRun))

	lifecycle := Lifecycle{Logger: logger, Tracer: env.Tracer, Metrics: env.Metrics}
	if err := lifecycle.Run(ctx, gens); err != nil {
		return Result{}, err
	}

	result := Result{
		RunID:   runID,
		Entity:  entityCtx.EntityNameCapitalized,
		DryRun:  opts.DryRun,
		Context: entityCtx,
		Files:   output.All(),
	}
	logger.Info("entity generated", zap.Int("files", result.FileCount()))
	return result, nil
}

// Prepare loads the definition for name and builds its context.
func Prepare(env Env, name string) (*entity.Context, error) {
	env = env.withDefaults()
	if env.Store == nil {
		return nil, errors.New("no entity store configured")
	}
	def, err := env.Store.Load(name)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, naming.UpperFirst(strings.TrimSpace(name)))
		}
		return nil, fmt.Errorf("load entity %s: %w", name, err)
	}
	return entity.Build(def, env.App, env.Now())
}

// Inspect returns the fully derived context for name without composing
// generators or writing files.
func Inspect(env Env, name string) (*entity.Context, error) {
	ctx, err := Prepare(env, name)
	if err != nil {
		return nil, err
	}
	derive.Server(ctx, env.Store)
	derive.Client(ctx, env.Store)
	return ctx, nil
}

func compose(ctx *entity.Context, deps Deps, registry *BlueprintRegistry) ([]Generator, error) {
	var bp Blueprint
	if deps.App.Blueprint != "" {
		var err error
		if bp, err = registry.Lookup(deps.App.Blueprint); err != nil {
			return nil, err
		}
	}

	var gens []Generator
	add := func(name string, builtin func(useBlueprint bool) Generator) {
		if bp != nil {
			if custom, ok := bp.SubGenerator(name, ctx, deps); ok {
				gens = append(gens, builtin(true), custom)
				return
			}
		}
		gens = append(gens, builtin(false))
	}
	if !deps.Options.SkipServer && !deps.App.SkipServer {
		add(ServerGeneratorName, func(useBlueprint bool) Generator {
			return NewServerGenerator(ctx, deps, useBlueprint)
		})
	}
	if !deps.Options.SkipClient && !deps.App.SkipClient {
		add(ClientGeneratorName, func(useBlueprint bool) Generator {
			return NewClientGenerator(ctx, deps, useBlueprint)
		})
	}
	return gens, nil
}
