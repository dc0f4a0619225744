// Package naming holds the string rules used to derive file, route, table,
// and accessor names from entity definitions.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

var inflector = pluralize.NewClient()

// UpperFirst uppercases the first rune and leaves the rest untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lowercases the first rune and leaves the rest untouched.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// KebabCase converts "OrderItemMySuffix" to "order-item-my-suffix".
func KebabCase(s string) string {
	return strcase.ToKebab(strings.TrimSpace(s))
}

// SnakeCase converts "zIndex" to "z_index".
func SnakeCase(s string) string {
	return strcase.ToSnake(strings.TrimSpace(s))
}

// CamelCase converts "catalog-order-item" to "catalogOrderItem".
func CamelCase(s string) string {
	return strcase.ToLowerCamel(strings.TrimSpace(s))
}

// UpperFirstCamelCase converts "my-suffix" to "MySuffix".
func UpperFirstCamelCase(s string) string {
	return UpperFirst(CamelCase(s))
}

// Pluralize returns the plural form of word, preserving its casing.
func Pluralize(word string) string {
	if word == "" {
		return ""
	}
	return inflector.Plural(word)
}

// JavaBeanName returns the fragment placed after get/set in bean accessors.
// Names whose first rune is lowercase and second rune uppercase ("xY...")
// keep a lowercase first rune; every other name is capitalized.
func JavaBeanName(field string) string {
	first, size := utf8.DecodeRuneInString(field)
	if size == 0 || size == len(field) {
		return UpperFirst(field)
	}
	second, _ := utf8.DecodeRuneInString(field[size:])
	if unicode.IsLower(first) && unicode.IsUpper(second) {
		return field
	}
	return UpperFirst(field)
}
