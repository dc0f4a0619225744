package entity

// Context is the record passed through every generator phase of one run.
// The builder fills the inputs; the client and server derivers add the rest.
type Context struct {
	Name                  string `json:"name"`
	EntityClass           string `json:"entityClass"`
	EntityNameCapitalized string `json:"entityNameCapitalized"`
	EntityInstance        string `json:"entityInstance"`
	EntityTableName       string `json:"entityTableName"`
	EntityTranslationKey  string `json:"entityTranslationKey"`
	EntityAngularJSSuffix string `json:"entityAngularJSSuffix,omitempty"`
	ClientRootFolder      string `json:"clientRootFolder,omitempty"`
	SkipUIGrouping        bool   `json:"skipUiGrouping,omitempty"`
	ChangelogDate         string `json:"changelogDate"`
	Dto                   string `json:"dto"`
	Pagination            string `json:"pagination"`
	Service               string `json:"service"`
	MicroserviceName      string `json:"microserviceName,omitempty"`
	ReadOnly              bool   `json:"readOnly,omitempty"`

	BaseName           string   `json:"baseName"`
	AngularAppName     string   `json:"angularAppName"`
	AngularXAppName    string   `json:"angularXAppName"`
	JhiPrefix          string   `json:"jhiPrefix"`
	ApplicationType    string   `json:"applicationType"`
	AuthenticationType string   `json:"authenticationType"`
	DatabaseType       string   `json:"databaseType"`
	ProdDatabaseType   string   `json:"prodDatabaseType"`
	Reactive           bool     `json:"reactive,omitempty"`
	PkType             string   `json:"pkType"`
	PackageName        string   `json:"packageName"`
	PackageFolder      string   `json:"packageFolder"`
	ClientFramework    string   `json:"clientFramework"`
	EnableTranslation  bool     `json:"enableTranslation"`
	Languages          []string `json:"languages"`

	Fields        []*Field        `json:"fields"`
	Relationships []*Relationship `json:"relationships"`

	// Client-side derived attributes.
	EntityFileName           string   `json:"entityFileName,omitempty"`
	EntityFolderName         string   `json:"entityFolderName,omitempty"`
	EntityModelFileName      string   `json:"entityModelFileName,omitempty"`
	EntityServiceFileName    string   `json:"entityServiceFileName,omitempty"`
	EntityAngularName        string   `json:"entityAngularName,omitempty"`
	EntityReactName          string   `json:"entityReactName,omitempty"`
	EntityStateName          string   `json:"entityStateName,omitempty"`
	EntityParentPathAddition string   `json:"entityParentPathAddition,omitempty"`
	EntityURL                string   `json:"entityUrl,omitempty"`
	EntityTranslationKeyMenu string   `json:"entityTranslationKeyMenu,omitempty"`
	I18nToLoad               []string `json:"i18nToLoad,omitempty"`
	I18nKeyPrefix            string   `json:"i18nKeyPrefix,omitempty"`
	FieldsIsReactAvField     bool     `json:"fieldsIsReactAvField,omitempty"`

	// Server-side derived attributes.
	ReactiveRepositories bool   `json:"reactiveRepositories,omitempty"`
	JhiTablePrefix       string `json:"jhiTablePrefix,omitempty"`
	HasUserField         bool   `json:"hasUserField,omitempty"`
	SaveUserSnapshot     bool   `json:"saveUserSnapshot,omitempty"`
}

// Field is one entity attribute. Pointer attributes are derived on demand and
// never overwritten once set.
type Field struct {
	FieldName                 string   `json:"fieldName"`
	FieldType                 string   `json:"fieldType"`
	FieldIsEnum               bool     `json:"fieldIsEnum,omitempty"`
	EnumInstance              string   `json:"enumInstance,omitempty"`
	FieldValues               string   `json:"fieldValues,omitempty"`
	FieldValidateRules        []string `json:"fieldValidateRules,omitempty"`
	FieldValidateRulesPattern *string  `json:"fieldValidateRulesPattern,omitempty"`

	FieldNameCapitalized             *string `json:"fieldNameCapitalized,omitempty"`
	FieldValidateRulesPatternAngular *string `json:"fieldValidateRulesPatternAngular,omitempty"`
	FieldValidateRulesPatternReact   *string `json:"fieldValidateRulesPatternReact,omitempty"`

	FieldNameUnderscored          *string `json:"fieldNameUnderscored,omitempty"`
	FieldNameAsDatabaseColumn     *string `json:"fieldNameAsDatabaseColumn,omitempty"`
	FieldInJavaBeanMethod         *string `json:"fieldInJavaBeanMethod,omitempty"`
	FieldValidateRulesPatternJava *string `json:"fieldValidateRulesPatternJava,omitempty"`
}

// Relationship is one association to another entity.
type Relationship struct {
	RelationshipName            string `json:"relationshipName"`
	OtherEntityName             string `json:"otherEntityName"`
	OtherEntityNameCapitalized  string `json:"otherEntityNameCapitalized"`
	RelationshipType            string `json:"relationshipType"`
	OwnerSide                   *bool  `json:"ownerSide,omitempty"`
	OtherEntityField            string `json:"otherEntityField,omitempty"`
	OtherEntityRelationshipName string `json:"otherEntityRelationshipName,omitempty"`

	OtherEntityAngularName      *string `json:"otherEntityAngularName,omitempty"`
	OtherEntityStateName        *string `json:"otherEntityStateName,omitempty"`
	OtherEntityModuleName       *string `json:"otherEntityModuleName,omitempty"`
	OtherEntityFileName         *string `json:"otherEntityFileName,omitempty"`
	OtherEntityClientRootFolder *string `json:"otherEntityClientRootFolder,omitempty"`
	OtherEntityModulePath       *string `json:"otherEntityModulePath,omitempty"`
	OtherEntityModelName        *string `json:"otherEntityModelName,omitempty"`
	OtherEntityPath             *string `json:"otherEntityPath,omitempty"`

	OtherEntityRelationshipNamePlural            *string `json:"otherEntityRelationshipNamePlural,omitempty"`
	OtherEntityRelationshipNameCapitalized       *string `json:"otherEntityRelationshipNameCapitalized,omitempty"`
	OtherEntityRelationshipNameCapitalizedPlural *string `json:"otherEntityRelationshipNameCapitalizedPlural,omitempty"`
	OtherEntityNameCapitalizedPlural             *string `json:"otherEntityNameCapitalizedPlural,omitempty"`
	OtherEntityTableName                         string  `json:"otherEntityTableName,omitempty"`
}

// IsOwnerSide reports whether the relationship is explicitly the owning side.
func (r *Relationship) IsOwnerSide() bool {
	return r.OwnerSide != nil && *r.OwnerSide
}

// IsExplicitlyNotOwner reports whether ownerSide was declared and is false.
// An undeclared ownerSide is neither owner nor non-owner.
func (r *Relationship) IsExplicitlyNotOwner() bool {
	return r.OwnerSide != nil && !*r.OwnerSide
}

// HasValidation reports whether the field declares any validation rule.
func (f *Field) HasValidation() bool {
	return len(f.FieldValidateRules) > 0
}

// HasRule reports whether the field declares the named validation rule.
func (f *Field) HasRule(rule string) bool {
	for _, r := range f.FieldValidateRules {
		if r == rule {
			return true
		}
	}
	return false
}
