package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestDirRepositoryLookupJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Product.json", `{
  "fields": [{"fieldName": "name", "fieldType": "String", "fieldValidateRulesPattern": "^[A-Z]"}],
  "relationships": [],
  "clientRootFolder": "catalog",
  "entityTableName": "product"
}`)
	writeDoc(t, dir, "Customer.yaml", `name: Customer
angularJSSuffix: mySuffix
relationships:
  - relationshipName: order
    otherEntityName: order
    relationshipType: one-to-many
    ownerSide: false
`)
	repo := NewDirRepository(dir, nil)

	product, ok := repo.Lookup("product")
	require.True(t, ok)
	assert.Equal(t, "Product", product.Name)
	assert.Equal(t, "catalog", product.ClientRootFolder)
	require.Len(t, product.Fields, 1)
	require.NotNil(t, product.Fields[0].FieldValidateRulesPattern)
	assert.Equal(t, "^[A-Z]", *product.Fields[0].FieldValidateRulesPattern)

	customer, ok := repo.Lookup("Customer")
	require.True(t, ok)
	assert.Equal(t, "mySuffix", customer.AngularJSSuffix)
	require.Len(t, customer.Relationships, 1)
	require.NotNil(t, customer.Relationships[0].OwnerSide)
	assert.False(t, *customer.Relationships[0].OwnerSide)

	_, ok = repo.Lookup("missing")
	assert.False(t, ok)
}

func TestDirRepositoryLogsUnreadableDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Broken.json", `{"name": `)
	core, logs := observer.New(zap.WarnLevel)
	repo := NewDirRepository(dir, zap.New(core))

	_, ok := repo.Lookup("broken")
	assert.False(t, ok)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "ignoring unreadable entity definition", logs.All()[0].Message)

	_, err := repo.Load("broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = repo.Load("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDirRepositoryNames(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "Product.json", `{}`)
	writeDoc(t, dir, "Order.yml", `name: Order`)
	writeDoc(t, dir, "README.md", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	names, err := NewDirRepository(dir, nil).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Order", "Product"}, names)

	names, err = NewDirRepository(filepath.Join(dir, "absent"), nil).Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository(Definition{Name: "product"})
	def, ok := repo.Lookup("Product")
	require.True(t, ok)
	assert.Equal(t, "product", def.Name)

	_, ok = repo.Lookup("order")
	assert.False(t, ok)

	_, err := repo.Load("order")
	assert.ErrorIs(t, err, ErrNotFound)

	repo.Put(Definition{Name: "Brand"})
	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Brand", "Product"}, names)
}

func TestSetDefault(t *testing.T) {
	var target *string
	calls := 0
	compute := func() string { calls++; return "first" }

	SetDefault(&target, compute)
	SetDefault(&target, func() string { return "second" })
	assert.Equal(t, "first", Value(target))
	assert.Equal(t, 1, calls)

	var optional *string
	SetDefaultOptional(&optional, func() (string, bool) { return "", false })
	assert.Nil(t, optional)
	SetDefaultOptional(&optional, func() (string, bool) { return "", true })
	require.NotNil(t, optional)
	assert.Equal(t, "", *optional)
}
