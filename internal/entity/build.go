package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deicod/scaffolder/internal/config"
	"github.com/deicod/scaffolder/internal/naming"
)

// ErrInvalidDefinition marks stored definitions that cannot be generated.
var ErrInvalidDefinition = errors.New("invalid entity definition")

// ChangelogLayout formats changelog dates ("20240131154500").
const ChangelogLayout = "20060102150405"

var builtinFieldTypes = map[string]struct{}{
	"String":        {},
	"Integer":       {},
	"Long":          {},
	"Float":         {},
	"Double":        {},
	"BigDecimal":    {},
	"LocalDate":     {},
	"Instant":       {},
	"ZonedDateTime": {},
	"Duration":      {},
	"UUID":          {},
	"Boolean":       {},
	"byte[]":        {},
	"Blob":          {},
	"AnyBlob":       {},
	"ImageBlob":     {},
	"TextBlob":      {},
}

// IsBuiltinType reports whether fieldType is a platform type rather than an enum.
func IsBuiltinType(fieldType string) bool {
	_, ok := builtinFieldTypes[fieldType]
	return ok
}

// Build assembles the generation context for def using the application
// settings. now stamps definitions that carry no changelog date.
func Build(def Definition, app config.App, now time.Time) (*Context, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}
	name := naming.UpperFirst(strings.TrimSpace(def.Name))
	instance := naming.LowerFirst(name)

	rootFolder := def.ClientRootFolder
	if app.SkipUIGrouping {
		rootFolder = ""
	}
	if rootFolder != "" && !naming.IsNestedFolder(rootFolder) {
		return nil, fmt.Errorf("%w: %s: clientRootFolder %q must stay inside the entities folder", ErrInvalidDefinition, name, rootFolder)
	}

	ctx := &Context{
		Name:                  name,
		EntityClass:           name,
		EntityNameCapitalized: name,
		EntityInstance:        instance,
		EntityTableName:       def.EntityTableName,
		EntityAngularJSSuffix: def.AngularJSSuffix,
		ClientRootFolder:      rootFolder,
		SkipUIGrouping:        app.SkipUIGrouping,
		ChangelogDate:         def.ChangelogDate,
		Dto:                   orDefault(def.Dto, "no"),
		Pagination:            orDefault(def.Pagination, "no"),
		Service:               orDefault(def.Service, "no"),
		MicroserviceName:      def.MicroserviceName,
		ReadOnly:              def.ReadOnly,

		BaseName:           app.BaseName,
		AngularAppName:     angularAppName(app.BaseName),
		AngularXAppName:    angularXAppName(app.BaseName),
		JhiPrefix:          app.JhiPrefix,
		ApplicationType:    app.ApplicationType,
		AuthenticationType: app.AuthenticationType,
		DatabaseType:       app.DatabaseType,
		ProdDatabaseType:   app.ProdDatabaseType,
		Reactive:           app.Reactive,
		PkType:             pkType(app.DatabaseType),
		PackageName:        app.PackageName,
		PackageFolder:      app.PackageFolder(),
		ClientFramework:    app.ClientFramework,
		EnableTranslation:  app.EnableTranslation,
		Languages:          append([]string(nil), app.Languages...),
	}
	if ctx.EntityTableName == "" {
		ctx.EntityTableName = naming.TableName(name)
	}
	if ctx.ChangelogDate == "" {
		ctx.ChangelogDate = now.UTC().Format(ChangelogLayout)
	}
	if rootFolder != "" {
		ctx.EntityTranslationKey = naming.CamelCase(rootFolder + "-" + instance)
	} else {
		ctx.EntityTranslationKey = instance
	}

	ctx.Fields = make([]*Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		field := &Field{
			FieldName:          fd.FieldName,
			FieldType:          fd.FieldType,
			FieldValues:        fd.FieldValues,
			FieldValidateRules: append([]string(nil), fd.FieldValidateRules...),
		}
		if fd.FieldValidateRulesPattern != nil {
			field.FieldValidateRulesPattern = Ptr(*fd.FieldValidateRulesPattern)
		}
		if !IsBuiltinType(fd.FieldType) {
			field.FieldIsEnum = true
			field.EnumInstance = naming.LowerFirst(fd.FieldType)
		}
		ctx.Fields = append(ctx.Fields, field)
	}

	ctx.Relationships = make([]*Relationship, 0, len(def.Relationships))
	for _, rd := range def.Relationships {
		rel := &Relationship{
			RelationshipName:            rd.RelationshipName,
			OtherEntityName:             rd.OtherEntityName,
			OtherEntityNameCapitalized:  naming.UpperFirst(rd.OtherEntityName),
			RelationshipType:            rd.RelationshipType,
			OtherEntityField:            orDefault(rd.OtherEntityField, "id"),
			OtherEntityRelationshipName: rd.OtherEntityRelationshipName,
		}
		if rd.OwnerSide != nil {
			rel.OwnerSide = Ptr(*rd.OwnerSide)
		}
		if rel.OtherEntityRelationshipName == "" && rel.RelationshipType != ManyToOne {
			rel.OtherEntityRelationshipName = instance
		}
		ctx.Relationships = append(ctx.Relationships, rel)
	}
	return ctx, nil
}

// Validate rejects definitions that are missing the names every deriver relies on.
func Validate(def Definition) error {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return fmt.Errorf("%w: entity name is required", ErrInvalidDefinition)
	}
	for i, f := range def.Fields {
		if strings.TrimSpace(f.FieldName) == "" {
			return fmt.Errorf("%w: %s: field %d has no fieldName", ErrInvalidDefinition, name, i)
		}
		if strings.TrimSpace(f.FieldType) == "" {
			return fmt.Errorf("%w: %s.%s has no fieldType", ErrInvalidDefinition, name, f.FieldName)
		}
	}
	for i, r := range def.Relationships {
		if strings.TrimSpace(r.OtherEntityName) == "" {
			return fmt.Errorf("%w: %s: relationship %d has no otherEntityName", ErrInvalidDefinition, name, i)
		}
		if !ValidRelationshipType(r.RelationshipType) {
			return fmt.Errorf("%w: %s.%s has unknown relationshipType %q", ErrInvalidDefinition, name, r.RelationshipName, r.RelationshipType)
		}
	}
	return nil
}

func angularAppName(baseName string) string {
	name := naming.CamelCase(baseName)
	if strings.HasSuffix(baseName, "App") {
		return name
	}
	return name + "App"
}

func angularXAppName(baseName string) string {
	name := naming.UpperFirstCamelCase(baseName)
	if trimmed := strings.TrimSuffix(name, "App"); trimmed != "" {
		return trimmed
	}
	return name
}

func pkType(databaseType string) string {
	switch databaseType {
	case "cassandra":
		return "UUID"
	case "mongodb", "couchbase":
		return "String"
	}
	return "Long"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
