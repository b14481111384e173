package cart

import (
	"context"
	"errors"
	"testing"

	"audiophile_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySlot simule le slot durable en mémoire pour les tests
type memorySlot struct {
	data    map[string]string
	failSet bool
}

func newMemorySlot() *memorySlot {
	return &memorySlot{data: make(map[string]string)}
}

func (s *memorySlot) Get(_ context.Context, key string) (string, error) {
	return s.data[key], nil
}

func (s *memorySlot) Set(_ context.Context, key string, value string) error {
	if s.failSet {
		return errors.New("slot indisponible")
	}
	s.data[key] = value
	return nil
}

func produit(id string, price int) models.Product {
	return models.Product{
		ID:    id,
		Slug:  "produit-" + id,
		Name:  "Produit " + id,
		Price: price,
		Images: models.ImageSet{
			Mobile: "/assets/produit-" + id + "/mobile/image-product.jpg",
		},
	}
}

func TestTotalsEmptyCart(t *testing.T) {
	e := NewEngine(newMemorySlot(), "cart:test")

	totals := e.Totals()
	assert.Equal(t, 0, totals.Subtotal)
	assert.Equal(t, 0, totals.Shipping, "pas de frais de port sur panier vide")
	assert.Equal(t, 0, totals.VAT)
	assert.Equal(t, 0, totals.GrandTotal)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.ItemCount())
}

func TestTotalsSingleItem(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))

	totals := e.Totals()
	assert.Equal(t, 1000, totals.Subtotal)
	assert.Equal(t, 50, totals.Shipping)
	assert.Equal(t, 200, totals.VAT)
	assert.Equal(t, 1250, totals.GrandTotal)
}

func TestTotalsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 2999), 2))
	require.NoError(t, e.AddToCart(ctx, produit("p2", 599), 3))

	assert.Equal(t, e.Totals(), e.Totals())
}

func TestTotalsVATRounding(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 33), 1))

	// 33 × 0.20 = 6.6 → arrondi à 7
	totals := e.Totals()
	assert.Equal(t, 33, totals.Subtotal)
	assert.Equal(t, 7, totals.VAT)
	assert.Equal(t, 33+50+7, totals.GrandTotal)
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 2))

	items := e.Items()
	require.Len(t, items, 1, "une seule ligne par produit")
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, e.ItemCount())
}

func TestAddToCartSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	p := produit("p1", 1000)
	require.NoError(t, e.AddToCart(ctx, p, 1))

	// Un changement de prix catalogue ne touche pas la ligne déjà ajoutée
	p.Price = 9999

	items := e.Items()
	assert.Equal(t, 1000, items[0].Price)
}

func TestAddToCartClampsQuantity(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 0))
	require.NoError(t, e.AddToCart(ctx, produit("p2", 500), -3))

	for _, item := range e.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
	assert.Equal(t, 2, e.ItemCount())
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 2))

	require.NoError(t, e.UpdateQuantity(ctx, "p1", 0))

	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Totals().Shipping)
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 2))

	require.NoError(t, e.UpdateQuantity(ctx, "p1", 5))

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))

	require.NoError(t, e.UpdateQuantity(ctx, "inconnu", 4))

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))

	require.NoError(t, e.RemoveFromCart(ctx, "inconnu"))
	assert.Len(t, e.Items(), 1)

	require.NoError(t, e.RemoveFromCart(ctx, "p1"))
	assert.True(t, e.IsEmpty())
}

func TestQuantityNeverBelowOneAcrossSequences(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 2))
	require.NoError(t, e.AddToCart(ctx, produit("p2", 500), -1))
	require.NoError(t, e.UpdateQuantity(ctx, "p1", -4))
	require.NoError(t, e.AddToCart(ctx, produit("p3", 250), 3))
	require.NoError(t, e.UpdateQuantity(ctx, "p3", 1))
	require.NoError(t, e.RemoveFromCart(ctx, "p2"))
	require.NoError(t, e.AddToCart(ctx, produit("p3", 250), 0))

	subtotal := 0
	for _, item := range e.Items() {
		assert.GreaterOrEqual(t, item.Quantity, 1)
		subtotal += item.Price * item.Quantity
	}
	assert.Equal(t, subtotal, e.Totals().Subtotal)
}

func TestInsertionOrderPreserved(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemorySlot(), "cart:test")

	require.NoError(t, e.AddToCart(ctx, produit("p2", 500), 1))
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))
	require.NoError(t, e.AddToCart(ctx, produit("p3", 250), 1))
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1)) // fusion, ne bouge pas

	items := e.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
	assert.Equal(t, "p3", items[2].ProductID)
}

func TestRoundTripThroughSlot(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()

	e := NewEngine(slot, "cart:session")
	require.NoError(t, e.AddToCart(ctx, produit("p2", 500), 2))
	require.NoError(t, e.AddToCart(ctx, produit("p1", 1000), 1))

	// Nouvelle session, même slot : on doit retrouver les mêmes lignes ordonnées
	reloaded := NewEngine(slot, "cart:session")
	reloaded.Load(ctx)

	assert.Equal(t, e.Items(), reloaded.Items())
	assert.Equal(t, e.Totals(), reloaded.Totals())
}

func TestLoadCorruptSlotYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	slot.data["cart:session"] = "{pas du json valide"

	e := NewEngine(slot, "cart:session")
	e.Load(ctx)

	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Totals().GrandTotal)
}

func TestMutationSurfacesSlotFailure(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	slot.failSet = true

	e := NewEngine(slot, "cart:test")
	err := e.AddToCart(ctx, produit("p1", 1000), 1)
	assert.Error(t, err)
}
