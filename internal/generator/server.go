package generator

import (
	"context"
	"path"

	"github.com/deicod/scaffolder/internal/derive"
	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/templates"
)

// ServerGeneratorName identifies the server sub-generator.
const ServerGeneratorName = "entity-server"

// ServerGenerator derives server metadata and renders the domain class,
// its repository, and the database changelog.
type ServerGenerator struct {
	ctx          *entity.Context
	deps         Deps
	useBlueprint bool
}

// NewServerGenerator binds the generator to ctx for one run.
func NewServerGenerator(ctx *entity.Context, deps Deps, useBlueprint bool) *ServerGenerator {
	return &ServerGenerator{ctx: ctx, deps: deps, useBlueprint: useBlueprint}
}

// Name implements Generator.
func (g *ServerGenerator) Name() string { return ServerGeneratorName }

// Context returns the shared entity context.
func (g *ServerGenerator) Context() *entity.Context { return g.ctx }

// Configuring implements Configurer.
func (g *ServerGenerator) Configuring(context.Context) error {
	if g.useBlueprint {
		return nil
	}
	derive.Server(g.ctx, g.deps.Repo)
	return nil
}

// Writing implements Writer.
func (g *ServerGenerator) Writing(context.Context) error {
	if g.useBlueprint {
		return nil
	}
	return renderTargets(g.deps.Output, g.Name(), g.ctx, serverTargets(g.ctx))
}

func serverTargets(ctx *entity.Context) []target {
	javaDir := path.Join("src/main/java", ctx.PackageFolder)
	return []target{
		{templates.ServerEntity, path.Join(javaDir, "domain", ctx.EntityClass+".java")},
		{templates.ServerRepository, path.Join(javaDir, "repository", ctx.EntityClass+"Repository.java")},
		{templates.ServerChangelog, path.Join("src/main/resources/config/liquibase/changelog",
			ctx.ChangelogDate+"_added_entity_"+ctx.EntityClass+".xml")},
	}
}
