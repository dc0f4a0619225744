// Package derive computes the naming and display metadata that client and
// server templates read from an entity context.
//
// Both derivers mutate the context in place. Context-level attributes are
// always recomputed; field and relationship attributes are only filled when
// unset, so running a deriver twice yields the same context.
package derive

import (
	"strings"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/naming"
)

// Field types that client forms render without validation-aware inputs.
var plainClientTypes = map[string]struct{}{
	"Instant":       {},
	"ZonedDateTime": {},
	"Boolean":       {},
}

var (
	htmlPatternEscaper   = strings.NewReplacer(`"`, "&#34;")
	scriptPatternEscaper = strings.NewReplacer(`'`, `\'`)
)

// Client fills the client-side attributes of ctx. Relationship targets are
// resolved through repo; unknown targets fall back to defaults.
func Client(ctx *entity.Context, repo entity.Repository) *entity.Context {
	ctx.EntityFileName = naming.KebabCase(ctx.EntityNameCapitalized + naming.UpperFirst(ctx.EntityAngularJSSuffix))
	ctx.EntityFolderName = naming.EntityFolderName(ctx.ClientRootFolder, ctx.EntityFileName)
	ctx.EntityModelFileName = ctx.EntityFolderName
	ctx.EntityServiceFileName = ctx.EntityFileName
	ctx.EntityAngularName = ctx.EntityClass + naming.UpperFirstCamelCase(ctx.EntityAngularJSSuffix)
	ctx.EntityReactName = ctx.EntityClass + naming.UpperFirstCamelCase(ctx.EntityAngularJSSuffix)
	ctx.EntityStateName = naming.KebabCase(ctx.EntityAngularName)
	ctx.EntityParentPathAddition = naming.ParentPathAddition(ctx.ClientRootFolder)
	ctx.EntityURL = ctx.EntityStateName
	if ctx.ClientRootFolder != "" {
		ctx.EntityTranslationKeyMenu = naming.CamelCase(ctx.ClientRootFolder + "-" + ctx.EntityStateName)
	} else {
		ctx.EntityTranslationKeyMenu = naming.CamelCase(ctx.EntityStateName)
	}
	ctx.I18nToLoad = []string{ctx.EntityInstance}
	ctx.I18nKeyPrefix = ctx.AngularAppName + "." + ctx.EntityTranslationKey

	for _, field := range ctx.Fields {
		clientField(ctx, field)
	}
	for _, rel := range ctx.Relationships {
		target, found := lookup(repo, rel.OtherEntityName)
		clientRelationship(ctx, rel, target, found)
	}
	return ctx
}

func clientField(ctx *entity.Context, field *entity.Field) {
	if _, plain := plainClientTypes[field.FieldType]; plain {
		return
	}
	ctx.FieldsIsReactAvField = true
	if field.FieldIsEnum {
		ctx.I18nToLoad = append(ctx.I18nToLoad, field.EnumInstance)
	}
	entity.SetDefault(&field.FieldNameCapitalized, func() string {
		return naming.UpperFirst(field.FieldName)
	})
	entity.SetDefaultOptional(&field.FieldValidateRulesPatternAngular, func() (string, bool) {
		return escapePattern(field.FieldValidateRulesPattern, htmlPatternEscaper)
	})
	entity.SetDefaultOptional(&field.FieldValidateRulesPatternReact, func() (string, bool) {
		return escapePattern(field.FieldValidateRulesPattern, scriptPatternEscaper)
	})
}

func clientRelationship(ctx *entity.Context, rel *entity.Relationship, target entity.Definition, found bool) {
	user := isClientUser(rel)
	entity.SetDefault(&rel.OtherEntityAngularName, func() string {
		if user {
			return "User"
		}
		suffix := ""
		if found {
			suffix = target.AngularJSSuffix
		}
		return naming.UpperFirst(rel.OtherEntityName) + naming.UpperFirstCamelCase(suffix)
	})
	entity.SetDefault(&rel.OtherEntityStateName, func() string {
		return naming.KebabCase(*rel.OtherEntityAngularName)
	})
	if rel.OtherEntityModuleName != nil {
		return
	}
	if user {
		rel.OtherEntityModuleName = entity.Ptr(ctx.AngularXAppName + "SharedModule")
		rel.OtherEntityModulePath = entity.Ptr("app/core")
		return
	}

	fileName := naming.KebabCase(*rel.OtherEntityAngularName)
	rel.OtherEntityModuleName = entity.Ptr(ctx.AngularXAppName + rel.OtherEntityNameCapitalized + "Module")
	rel.OtherEntityFileName = entity.Ptr(fileName)

	targetFolder := ""
	if found {
		targetFolder = target.ClientRootFolder
	}
	if ctx.SkipUIGrouping || targetFolder == "" {
		rel.OtherEntityClientRootFolder = entity.Ptr("")
	} else {
		rel.OtherEntityClientRootFolder = entity.Ptr(targetFolder + "/")
	}

	parent := ""
	if ctx.EntityParentPathAddition != "" {
		parent = ctx.EntityParentPathAddition + "/"
	}
	if targetFolder != "" {
		if ctx.ClientRootFolder == targetFolder {
			rel.OtherEntityModulePath = entity.Ptr(fileName)
		} else {
			rel.OtherEntityModulePath = entity.Ptr(parent + targetFolder + "/" + fileName)
		}
		rel.OtherEntityModelName = entity.Ptr(targetFolder + "/" + fileName)
		rel.OtherEntityPath = entity.Ptr(targetFolder + "/" + fileName)
		return
	}
	rel.OtherEntityModulePath = entity.Ptr(parent + fileName)
	rel.OtherEntityModelName = entity.Ptr(fileName)
	rel.OtherEntityPath = entity.Ptr(fileName)
}

// The client treats a target as the built-in user entity by its capitalized name.
func isClientUser(rel *entity.Relationship) bool {
	return rel.OtherEntityNameCapitalized == "User"
}

func escapePattern(pattern *string, escaper *strings.Replacer) (string, bool) {
	if pattern == nil {
		return "", false
	}
	return escaper.Replace(*pattern), true
}

func lookup(repo entity.Repository, name string) (entity.Definition, bool) {
	if repo == nil {
		return entity.Definition{}, false
	}
	return repo.Lookup(name)
}
