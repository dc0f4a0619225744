package templates

import (
	"text/template"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/naming"
)

var tsTypes = map[string]string{
	"String":        "string",
	"UUID":          "string",
	"TextBlob":      "string",
	"Integer":       "number",
	"Long":          "number",
	"Float":         "number",
	"Double":        "number",
	"BigDecimal":    "number",
	"Boolean":       "boolean",
	"LocalDate":     "Moment",
	"Instant":       "Moment",
	"ZonedDateTime": "Moment",
	"Duration":      "string",
}

var javaTypes = map[string]string{
	"byte[]":    "byte[]",
	"Blob":      "byte[]",
	"AnyBlob":   "byte[]",
	"ImageBlob": "byte[]",
	"TextBlob":  "String",
}

var liquibaseTypes = map[string]string{
	"String":        "varchar(255)",
	"UUID":          "${uuidType}",
	"Integer":       "integer",
	"Long":          "bigint",
	"Float":         "${floatType}",
	"Double":        "double",
	"BigDecimal":    "decimal(21,2)",
	"Boolean":       "boolean",
	"LocalDate":     "date",
	"Instant":       "${datetimeType}",
	"ZonedDateTime": "${datetimeType}",
	"Duration":      "bigint",
	"byte[]":        "${blobType}",
	"Blob":          "${blobType}",
	"AnyBlob":       "${blobType}",
	"ImageBlob":     "${blobType}",
	"TextBlob":      "${clobType}",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"value":      entity.Value,
		"upperFirst": naming.UpperFirst,
		"lowerFirst": naming.LowerFirst,
		"kebab":      naming.KebabCase,
		"snake":      naming.SnakeCase,
		"plural":     naming.Pluralize,
		"column":     naming.ColumnName,
		"tsType":     tsType,
		"javaType":   javaType,
		"liquibase":  liquibaseType,
		"isUser":     isUser,
		"imports":    importTargets,
	}
}

func tsType(f *entity.Field) string {
	if f.FieldIsEnum {
		return f.FieldType
	}
	if t, ok := tsTypes[f.FieldType]; ok {
		return t
	}
	return "any"
}

func javaType(f *entity.Field) string {
	if t, ok := javaTypes[f.FieldType]; ok {
		return t
	}
	return f.FieldType
}

func liquibaseType(f *entity.Field) string {
	if f.FieldIsEnum {
		return "varchar(255)"
	}
	if t, ok := liquibaseTypes[f.FieldType]; ok {
		return t
	}
	return "varchar(255)"
}

func isUser(rel *entity.Relationship) bool {
	return rel.OtherEntityNameCapitalized == "User"
}

// importTargets keeps the first relationship per target entity so generated
// sources import each model once.
func importTargets(rels []*entity.Relationship) []*entity.Relationship {
	seen := make(map[string]struct{}, len(rels))
	out := make([]*entity.Relationship, 0, len(rels))
	for _, rel := range rels {
		if _, ok := seen[rel.OtherEntityNameCapitalized]; ok {
			continue
		}
		seen[rel.OtherEntityNameCapitalized] = struct{}{}
		out = append(out, rel)
	}
	return out
}
