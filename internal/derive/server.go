package derive

import (
	"slices"
	"strings"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/naming"
)

var reactiveDatabases = []string{"mongodb", "cassandra", "couchbase"}

var (
	javaBackslashEscaper = strings.NewReplacer(`\`, `\\`)
	javaQuoteEscaper     = strings.NewReplacer(`"`, `\"`)
)

// Server fills the server-side attributes of ctx: column and table names,
// bean accessor fragments, and pluralized relationship names.
func Server(ctx *entity.Context, repo entity.Repository) *entity.Context {
	ctx.ReactiveRepositories = ctx.Reactive && slices.Contains(reactiveDatabases, ctx.DatabaseType)
	ctx.JhiTablePrefix = naming.TableName(ctx.JhiPrefix)

	for _, field := range ctx.Fields {
		serverField(ctx, field)
	}
	for _, rel := range ctx.Relationships {
		target, found := lookup(repo, rel.OtherEntityName)
		serverRelationship(ctx, rel, target, found)
	}
	return ctx
}

func serverField(ctx *entity.Context, field *entity.Field) {
	entity.SetDefault(&field.FieldNameUnderscored, func() string {
		return naming.SnakeCase(field.FieldName)
	})
	entity.SetDefault(&field.FieldNameAsDatabaseColumn, func() string {
		underscored := naming.SnakeCase(field.FieldName)
		if naming.IsReservedTableName(underscored, ctx.DatabaseType) {
			return naming.ColumnName(ctx.JhiPrefix) + "_" + underscored
		}
		return underscored
	})
	entity.SetDefault(&field.FieldInJavaBeanMethod, func() string {
		return naming.JavaBeanName(field.FieldName)
	})
	entity.SetDefaultOptional(&field.FieldValidateRulesPatternJava, func() (string, bool) {
		if field.FieldValidateRulesPattern == nil {
			return "", false
		}
		escaped := javaBackslashEscaper.Replace(*field.FieldValidateRulesPattern)
		return javaQuoteEscaper.Replace(escaped), true
	})
}

func serverRelationship(ctx *entity.Context, rel *entity.Relationship, target entity.Definition, found bool) {
	if needsPluralBackReference(rel) {
		entity.SetDefault(&rel.OtherEntityRelationshipNamePlural, func() string {
			return naming.Pluralize(rel.OtherEntityRelationshipName)
		})
	}
	entity.SetDefault(&rel.OtherEntityRelationshipNameCapitalized, func() string {
		return naming.UpperFirst(rel.OtherEntityRelationshipName)
	})
	entity.SetDefault(&rel.OtherEntityRelationshipNameCapitalizedPlural, func() string {
		return naming.Pluralize(naming.UpperFirst(rel.OtherEntityRelationshipName))
	})

	if rel.OtherEntityName == entity.UserEntity {
		rel.OtherEntityTableName = ctx.JhiTablePrefix + "_user"
		ctx.HasUserField = true
	} else {
		tableName := ""
		if found {
			tableName = target.EntityTableName
		}
		if tableName == "" {
			tableName = naming.TableName(rel.OtherEntityName)
		}
		if naming.IsReservedTableName(tableName, ctx.ProdDatabaseType) {
			tableName = ctx.JhiTablePrefix + "_" + tableName
		}
		rel.OtherEntityTableName = tableName
	}
	ctx.SaveUserSnapshot = ctx.ApplicationType == "microservice" &&
		ctx.AuthenticationType == "oauth2" &&
		ctx.HasUserField &&
		ctx.Dto == "no"

	if rel.OtherEntityRelationshipNamePlural == nil && rel.RelationshipType == entity.ManyToOne && found {
		repairBackReference(ctx, rel, target)
	}

	entity.SetDefault(&rel.OtherEntityNameCapitalizedPlural, func() string {
		return naming.Pluralize(naming.UpperFirst(rel.OtherEntityName))
	})
}

// needsPluralBackReference reports whether the inverse side of rel holds a
// collection and therefore needs a plural name up front.
func needsPluralBackReference(rel *entity.Relationship) bool {
	switch rel.RelationshipType {
	case entity.OneToMany:
		return true
	case entity.ManyToMany:
		return rel.IsExplicitlyNotOwner()
	case entity.OneToOne:
		return strings.ToLower(rel.OtherEntityName) != entity.UserEntity
	}
	return false
}

// repairBackReference copies the name of the first one-to-many relationship
// on target that points back at rel. Definitions that omit the inverse side
// of a many-to-one still get a usable plural name this way.
func repairBackReference(ctx *entity.Context, rel *entity.Relationship, target entity.Definition) {
	for _, other := range target.Relationships {
		if naming.UpperFirst(other.OtherEntityName) != ctx.Name {
			continue
		}
		if other.OtherEntityRelationshipName != rel.RelationshipName || other.RelationshipType != entity.OneToMany {
			continue
		}
		rel.OtherEntityRelationshipName = other.RelationshipName
		rel.OtherEntityRelationshipNamePlural = entity.Ptr(naming.Pluralize(other.RelationshipName))
		return
	}
}
