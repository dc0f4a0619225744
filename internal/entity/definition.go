// Package entity models entity definitions and the mutable context that the
// client and server derivers enrich during a generation run.
package entity

// Relationship kinds.
const (
	OneToOne   = "one-to-one"
	OneToMany  = "one-to-many"
	ManyToOne  = "many-to-one"
	ManyToMany = "many-to-many"
)

// UserEntity is the built-in user entity name every application ships with.
const UserEntity = "user"

// Definition is the document stored for each entity under the entities directory.
type Definition struct {
	Name             string                   `json:"name" yaml:"name"`
	Fields           []FieldDefinition        `json:"fields" yaml:"fields"`
	Relationships    []RelationshipDefinition `json:"relationships" yaml:"relationships"`
	ChangelogDate    string                   `json:"changelogDate,omitempty" yaml:"changelogDate,omitempty"`
	EntityTableName  string                   `json:"entityTableName,omitempty" yaml:"entityTableName,omitempty"`
	Dto              string                   `json:"dto,omitempty" yaml:"dto,omitempty"`
	Pagination       string                   `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	Service          string                   `json:"service,omitempty" yaml:"service,omitempty"`
	ClientRootFolder string                   `json:"clientRootFolder,omitempty" yaml:"clientRootFolder,omitempty"`
	AngularJSSuffix  string                   `json:"angularJSSuffix,omitempty" yaml:"angularJSSuffix,omitempty"`
	MicroserviceName string                   `json:"microserviceName,omitempty" yaml:"microserviceName,omitempty"`
	ReadOnly         bool                     `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

// FieldDefinition is a stored field declaration.
type FieldDefinition struct {
	FieldName                 string   `json:"fieldName" yaml:"fieldName"`
	FieldType                 string   `json:"fieldType" yaml:"fieldType"`
	FieldValues               string   `json:"fieldValues,omitempty" yaml:"fieldValues,omitempty"`
	FieldValidateRules        []string `json:"fieldValidateRules,omitempty" yaml:"fieldValidateRules,omitempty"`
	FieldValidateRulesPattern *string  `json:"fieldValidateRulesPattern,omitempty" yaml:"fieldValidateRulesPattern,omitempty"`
}

// RelationshipDefinition is a stored relationship declaration.
type RelationshipDefinition struct {
	RelationshipName            string `json:"relationshipName" yaml:"relationshipName"`
	OtherEntityName             string `json:"otherEntityName" yaml:"otherEntityName"`
	RelationshipType            string `json:"relationshipType" yaml:"relationshipType"`
	OtherEntityField            string `json:"otherEntityField,omitempty" yaml:"otherEntityField,omitempty"`
	OtherEntityRelationshipName string `json:"otherEntityRelationshipName,omitempty" yaml:"otherEntityRelationshipName,omitempty"`
	OwnerSide                   *bool  `json:"ownerSide,omitempty" yaml:"ownerSide,omitempty"`
}

// ValidRelationshipType reports whether kind is one of the four supported cardinalities.
func ValidRelationshipType(kind string) bool {
	switch kind {
	case OneToOne, OneToMany, ManyToOne, ManyToMany:
		return true
	}
	return false
}
