package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	names := []string{"Order", "OrderItem", "Product", "Customer"}

	assert.Equal(t, []string{"Order"}, Closest("Ordr", names, 3))
	assert.Equal(t, []string{"Product"}, Closest("product", names, 3))
	assert.Equal(t, []string{"Order", "OrderItem"}, Closest("orde", names, 3))
	assert.Empty(t, Closest("Invoice", names, 3))
	assert.Empty(t, Closest("", names, 3))
	assert.Len(t, Closest("orde", names, 1), 1)
}

func TestPhrase(t *testing.T) {
	assert.Equal(t, "", Phrase(nil))
	assert.Equal(t, `did you mean "Order"?`, Phrase([]string{"Order"}))
	assert.Equal(t, `did you mean "Order" or "OrderItem"?`, Phrase([]string{"Order", "OrderItem"}))
}
