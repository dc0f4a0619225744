package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseConversions(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"kebab simple", KebabCase, "OrderItem", "order-item"},
		{"kebab suffix", KebabCase, "OrderItemMySuffix", "order-item-my-suffix"},
		{"snake lower", SnakeCase, "quantity", "quantity"},
		{"snake camel", SnakeCase, "zIndex", "z_index"},
		{"snake words", SnakeCase, "orderDate", "order_date"},
		{"camel kebab", CamelCase, "order-item", "orderItem"},
		{"camel folder", CamelCase, "catalog-order-item", "catalogOrderItem"},
		{"upper camel", UpperFirstCamelCase, "mySuffix", "MySuffix"},
		{"upper camel empty", UpperFirstCamelCase, "", ""},
		{"upper first", UpperFirst, "orderItem", "OrderItem"},
		{"lower first", LowerFirst, "OrderItem", "orderItem"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.in))
		})
	}
}

func TestPluralize(t *testing.T) {
	cases := map[string]string{
		"item":      "items",
		"category":  "categories",
		"OrderItem": "OrderItems",
		"Person":    "People",
		"":          "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, Pluralize(in))
		})
	}
}

func TestJavaBeanName(t *testing.T) {
	cases := map[string]string{
		"zIndex":   "zIndex",
		"eTag":     "eTag",
		"name":     "Name",
		"quantity": "Quantity",
		"a":        "A",
		"URL":      "URL",
		"":         "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, JavaBeanName(in))
		})
	}
}

func TestTableName(t *testing.T) {
	cases := map[string]string{
		"OrderItem":   "order_item",
		"product":     "product",
		"jhi":         "jhi",
		"HTTPRequest": "httprequest",
		"A":           "a",
		"":            "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, TableName(in))
			assert.Equal(t, want, ColumnName(in))
		})
	}
}

func TestEntityFolderName(t *testing.T) {
	assert.Equal(t, "order-item", EntityFolderName("", "order-item"))
	assert.Equal(t, "sales/order-item", EntityFolderName("sales", "order-item"))
}

func TestParentPathAddition(t *testing.T) {
	cases := map[string]string{
		"":         "",
		"catalog":  "..",
		"catalog/": "..",
		"a/b":      "../..",
		"../x":     "",
		"/abs":     "",
		".":        "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParentPathAddition(in))
		})
	}
}

func TestIsReservedTableName(t *testing.T) {
	assert.True(t, IsReservedTableName("order", "sql"))
	assert.True(t, IsReservedTableName("user", "postgresql"))
	assert.True(t, IsReservedTableName("USER", "oracle"))
	assert.True(t, IsReservedTableName("keyspace", "cassandra"))
	assert.False(t, IsReservedTableName("user", "mysql"))
	assert.False(t, IsReservedTableName("product", "sql"))
	assert.False(t, IsReservedTableName("order", ""))
	assert.False(t, IsReservedTableName("order", "neo4j"))
	assert.True(t, IsReservedTableName("select", "mariadb"))
}
