package generator

import (
	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/templates"
)

type target struct {
	template string
	path     string
}

func renderTargets(out *Output, generator string, ctx *entity.Context, targets []target) error {
	for _, t := range targets {
		content, err := templates.Render(t.template, ctx)
		if err != nil {
			return err
		}
		if err := out.Write(generator, t.path, content); err != nil {
			return err
		}
	}
	return nil
}
