package naming

import (
	"strings"
	"unicode"
)

// TableName converts an entity name into its physical table name.
func TableName(name string) string {
	return hibernateSnakeCase(name)
}

// ColumnName converts a prefix or field name into its physical column name.
func ColumnName(name string) string {
	return hibernateSnakeCase(name)
}

// hibernateSnakeCase mirrors the physical naming strategy of the generated
// server: an underscore is inserted before an uppercase rune only when it sits
// between a lowercase rune and a non-uppercase rune, so acronyms stay joined
// ("HTTPRequest" -> "httprequest", "OrderItem" -> "order_item").
func hibernateSnakeCase(value string) string {
	if value == "" {
		return ""
	}
	value = strings.Replace(value, ".", "_", 1)
	runes := []rune(value)
	if len(runes) == 1 {
		return strings.ToLower(value)
	}
	var b strings.Builder
	b.WriteRune(runes[0])
	for i := 1; i < len(runes)-1; i++ {
		prev, cur, next := runes[i-1], runes[i], runes[i+1]
		if prev != unicode.ToUpper(prev) && cur != unicode.ToLower(cur) && next != unicode.ToUpper(next) {
			b.WriteRune('_')
		}
		b.WriteRune(cur)
	}
	b.WriteRune(runes[len(runes)-1])
	return strings.ToLower(b.String())
}
