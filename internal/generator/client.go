package generator

import (
	"context"
	"fmt"
	"path"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/derive"
	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/templates"
)

// ClientGeneratorName identifies the client sub-generator.
const ClientGeneratorName = "entity-client"

var successColor = color.New(color.FgGreen, color.Bold)

// ClientGenerator derives client metadata and renders the client sources.
// With useBlueprint set every phase is a no-op and the blueprint's own
// generator does the work.
type ClientGenerator struct {
	ctx          *entity.Context
	deps         Deps
	useBlueprint bool
}

// NewClientGenerator binds the generator to ctx for one run.
func NewClientGenerator(ctx *entity.Context, deps Deps, useBlueprint bool) *ClientGenerator {
	return &ClientGenerator{ctx: ctx, deps: deps, useBlueprint: useBlueprint}
}

// Name implements Generator.
func (g *ClientGenerator) Name() string { return ClientGeneratorName }

// Context returns the shared entity context.
func (g *ClientGenerator) Context() *entity.Context { return g.ctx }

// Configuring implements Configurer.
func (g *ClientGenerator) Configuring(context.Context) error {
	if g.useBlueprint {
		return nil
	}
	derive.Client(g.ctx, g.deps.Repo)
	return nil
}

// Writing implements Writer.
func (g *ClientGenerator) Writing(context.Context) error {
	if g.useBlueprint {
		return nil
	}
	return renderTargets(g.deps.Output, g.Name(), g.ctx, clientTargets(g.ctx))
}

// End implements Ender: it rebuilds the client bundle and reports success.
func (g *ClientGenerator) End(ctx context.Context) error {
	if g.useBlueprint {
		return nil
	}
	skipClient := g.deps.Options.SkipClient || g.deps.App.SkipClient
	if !g.deps.Options.SkipInstall && !skipClient && !g.deps.Options.DryRun && g.deps.Builder != nil {
		g.deps.logger().Info("rebuilding client", zap.String("package_manager", g.deps.App.ClientPackageManager))
		if err := g.deps.Builder.Build(ctx, g.deps.Root, g.deps.App.ClientPackageManager); err != nil {
			return fmt.Errorf("rebuild client: %w", err)
		}
	}
	successColor.Fprintf(g.deps.stdout(), "Entity %s generated successfully.\n", g.ctx.EntityNameCapitalized)
	return nil
}

func clientTargets(ctx *entity.Context) []target {
	entityDir := path.Join("src/main/webapp/app/entities", ctx.EntityFolderName)
	targets := []target{
		{templates.ClientModel, path.Join("src/main/webapp/app/shared/model", ctx.EntityModelFileName+".model.ts")},
		{templates.ClientService, path.Join(entityDir, ctx.EntityFileName+".service.ts")},
		{templates.ClientRoute, path.Join(entityDir, ctx.EntityFileName+".route.ts")},
	}
	if ctx.EnableTranslation {
		for _, lang := range ctx.Languages {
			targets = append(targets, target{
				templates.ClientI18n,
				path.Join("src/main/webapp/i18n", lang, ctx.EntityTranslationKey+".json"),
			})
		}
	}
	return targets
}
