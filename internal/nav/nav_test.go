package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorStartsAtHome(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, Home(), n.Current())
	assert.Equal(t, 1, n.Depth())
}

func TestNavigateAndGoBack(t *testing.T) {
	n := NewNavigator()
	n.Navigate(Category("headphones"))
	n.Navigate(ProductDetail("xx99-mark-ii-headphones"))

	assert.Equal(t, KindProductDetail, n.Current().Kind)
	assert.Equal(t, "xx99-mark-ii-headphones", n.Current().Slug)

	back := n.GoBack()
	assert.Equal(t, Category("headphones"), back)

	back = n.GoBack()
	assert.Equal(t, Home(), back)
}

func TestGoBackAtBottomFallsBackToHome(t *testing.T) {
	n := NewNavigator()
	n.stack = []Page{Checkout()} // session restaurée ailleurs qu'à l'accueil

	assert.Equal(t, Home(), n.GoBack())
}

func TestPagePayloads(t *testing.T) {
	p := OrderConfirmation("ORD-123-abcdefghi")
	assert.Equal(t, KindOrderConfirmation, p.Kind)
	assert.Equal(t, "ORD-123-abcdefghi", p.OrderID)
	assert.Empty(t, p.Slug)
	assert.Empty(t, p.Category)

	l := OrderLookup("ORD-123-abcdefghi")
	assert.Equal(t, KindOrderLookup, l.Kind)
	assert.Equal(t, "ORD-123-abcdefghi", l.OrderID)
}
