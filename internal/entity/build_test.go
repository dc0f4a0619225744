package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deicod/scaffolder/internal/config"
)

var fixedNow = time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

func orderItemDefinition() Definition {
	return Definition{
		Name: "orderItem",
		Fields: []FieldDefinition{
			{FieldName: "quantity", FieldType: "Integer"},
			{FieldName: "status", FieldType: "OrderItemStatus"},
		},
		Relationships: []RelationshipDefinition{
			{RelationshipName: "product", OtherEntityName: "product", RelationshipType: ManyToOne, OtherEntityField: "name"},
			{RelationshipName: "tag", OtherEntityName: "tag", RelationshipType: ManyToMany, OwnerSide: Ptr(true)},
		},
	}
}

func TestBuildFillsNamingInputs(t *testing.T) {
	app := config.Default()
	app.BaseName = "store"

	ctx, err := Build(orderItemDefinition(), app, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "OrderItem", ctx.Name)
	assert.Equal(t, "OrderItem", ctx.EntityClass)
	assert.Equal(t, "orderItem", ctx.EntityInstance)
	assert.Equal(t, "order_item", ctx.EntityTableName)
	assert.Equal(t, "orderItem", ctx.EntityTranslationKey)
	assert.Equal(t, "storeApp", ctx.AngularAppName)
	assert.Equal(t, "Store", ctx.AngularXAppName)
	assert.Equal(t, "20240305103000", ctx.ChangelogDate)
	assert.Equal(t, "no", ctx.Dto)
	assert.Equal(t, "Long", ctx.PkType)
	assert.Equal(t, "com/mycompany/myapp", ctx.PackageFolder)

	require.Len(t, ctx.Fields, 2)
	assert.False(t, ctx.Fields[0].FieldIsEnum)
	assert.True(t, ctx.Fields[1].FieldIsEnum)
	assert.Equal(t, "orderItemStatus", ctx.Fields[1].EnumInstance)

	require.Len(t, ctx.Relationships, 2)
	product := ctx.Relationships[0]
	assert.Equal(t, "Product", product.OtherEntityNameCapitalized)
	assert.Empty(t, product.OtherEntityRelationshipName, "many-to-one keeps an undeclared back reference empty")
	tag := ctx.Relationships[1]
	assert.Equal(t, "orderItem", tag.OtherEntityRelationshipName)
	assert.True(t, tag.IsOwnerSide())
	assert.Equal(t, "id", tag.OtherEntityField)
}

func TestBuildRootFolderTranslationKey(t *testing.T) {
	def := orderItemDefinition()
	def.ClientRootFolder = "sales"

	ctx, err := Build(def, config.Default(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "sales", ctx.ClientRootFolder)
	assert.Equal(t, "salesOrderItem", ctx.EntityTranslationKey)

	app := config.Default()
	app.SkipUIGrouping = true
	ctx, err = Build(def, app, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, ctx.ClientRootFolder)
	assert.Equal(t, "orderItem", ctx.EntityTranslationKey)
}

func TestBuildRejectsEscapingRootFolder(t *testing.T) {
	def := orderItemDefinition()
	def.ClientRootFolder = "../outside"

	_, err := Build(def, config.Default(), fixedNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestBuildKeepsStoredValues(t *testing.T) {
	def := orderItemDefinition()
	def.EntityTableName = "line_item"
	def.ChangelogDate = "20200101000000"
	def.Dto = "mapstruct"

	app := config.Default()
	app.DatabaseType = "cassandra"
	ctx, err := Build(def, app, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "line_item", ctx.EntityTableName)
	assert.Equal(t, "20200101000000", ctx.ChangelogDate)
	assert.Equal(t, "mapstruct", ctx.Dto)
	assert.Equal(t, "UUID", ctx.PkType)
}

func TestAppNames(t *testing.T) {
	assert.Equal(t, "jhipsterApp", angularAppName("jhipster"))
	assert.Equal(t, "storeApp", angularAppName("storeApp"))
	assert.Equal(t, "Jhipster", angularXAppName("jhipster"))
	assert.Equal(t, "Store", angularXAppName("storeApp"))
	assert.Equal(t, "App", angularXAppName("app"))
}

func TestValidate(t *testing.T) {
	cases := map[string]Definition{
		"missing name":       {},
		"missing field name": {Name: "A", Fields: []FieldDefinition{{FieldType: "String"}}},
		"missing field type": {Name: "A", Fields: []FieldDefinition{{FieldName: "a"}}},
		"missing target":     {Name: "A", Relationships: []RelationshipDefinition{{RelationshipType: OneToOne}}},
		"unknown kind":       {Name: "A", Relationships: []RelationshipDefinition{{OtherEntityName: "b", RelationshipType: "one-to-few"}}},
	}
	for name, def := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(def), ErrInvalidDefinition)
		})
	}
	assert.NoError(t, Validate(orderItemDefinition()))
}
