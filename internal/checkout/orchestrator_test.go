package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"audiophile_back_end/internal/cart"
	"audiophile_back_end/internal/models"
	"audiophile_back_end/internal/nav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []models.Order
	fail    bool
}

func (s *fakeStore) CreateOrder(_ context.Context, order models.Order) error {
	if s.fail {
		return errors.New("base commandes injoignable")
	}
	s.created = append(s.created, order)
	return nil
}

func (s *fakeStore) GetOrderByID(_ context.Context, orderID string) (*models.Order, error) {
	for i := range s.created {
		if s.created[i].OrderID == orderID {
			return &s.created[i], nil
		}
	}
	return nil, nil
}

type fakeSender struct {
	sent chan models.Order
	fail bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(chan models.Order, 1)}
}

func (s *fakeSender) SendOrderConfirmation(_ context.Context, order models.Order) (string, error) {
	if s.fail {
		return "", errors.New("SMTP injoignable")
	}
	s.sent <- order
	return "msg-1", nil
}

type memorySlot struct {
	data map[string]string
}

func newMemorySlot() *memorySlot {
	return &memorySlot{data: make(map[string]string)}
}

func (s *memorySlot) Get(_ context.Context, key string) (string, error) { return s.data[key], nil }
func (s *memorySlot) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func filledEngine(t *testing.T) *cart.Engine {
	t.Helper()
	e := cart.NewEngine(newMemorySlot(), "cart:test")
	p := models.Product{ID: "p1", Name: "XX59 Headphones", Price: 899,
		Images: models.ImageSet{Mobile: "/assets/product-xx59-headphones/mobile/image-product.jpg"}}
	require.NoError(t, e.AddToCart(context.Background(), p, 2))
	return e
}

func TestSubmitHappyPath(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	sender := newFakeSender()
	o := NewOrchestrator(store, sender)
	engine := filledEngine(t)

	order, fieldErrs, err := o.Submit(ctx, engine, validForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "Alexei Ward", order.Customer.Name)
	assert.Equal(t, engine.Totals(), order.Totals)
	require.Len(t, store.created, 1)

	// Le panier n'est pas vidé tant que le client n'a pas acquitté
	assert.False(t, engine.IsEmpty())

	select {
	case sent := <-sender.sent:
		assert.Equal(t, order.OrderID, sent.OrderID)
	case <-time.After(2 * time.Second):
		t.Fatal("email de confirmation jamais envoyé")
	}
}

func TestSubmitValidationFailureSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	o := NewOrchestrator(store, newFakeSender())
	engine := filledEngine(t)

	form := validForm()
	form.Email = ""

	_, fieldErrs, err := o.Submit(ctx, engine, form)
	require.NoError(t, err)
	assert.Contains(t, fieldErrs, "email")
	assert.Empty(t, store.created, "aucune commande persistée sur échec de validation")
	assert.False(t, engine.IsEmpty())
}

func TestSubmitRefusesEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	o := NewOrchestrator(store, newFakeSender())
	engine := cart.NewEngine(newMemorySlot(), "cart:test")

	_, fieldErrs, err := o.Submit(ctx, engine, validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, fieldErrs)
	assert.Empty(t, store.created)
}

func TestSubmitPersistenceFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{fail: true}
	o := NewOrchestrator(store, newFakeSender())
	engine := filledEngine(t)

	_, _, err := o.Submit(ctx, engine, validForm())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCart)

	// Le client doit pouvoir retenter : panier intact
	assert.False(t, engine.IsEmpty())
	assert.Equal(t, 2, engine.ItemCount())
}

func TestSubmitSenderFailureDoesNotFailCheckout(t *testing.T) {
	ctx := context.Background()
	store := &fakeStore{}
	sender := newFakeSender()
	sender.fail = true
	o := NewOrchestrator(store, sender)
	engine := filledEngine(t)

	order, fieldErrs, err := o.Submit(ctx, engine, validForm())
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.NotEmpty(t, order.OrderID)
	require.Len(t, store.created, 1)
}

func TestConfirmClearsCartAndNavigates(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(&fakeStore{}, newFakeSender())
	engine := filledEngine(t)

	order, _, err := o.Submit(ctx, engine, validForm())
	require.NoError(t, err)

	page, err := o.Confirm(ctx, engine, order.OrderID)
	require.NoError(t, err)

	assert.Equal(t, nav.KindOrderConfirmation, page.Kind)
	assert.Equal(t, order.OrderID, page.OrderID)
	assert.True(t, engine.IsEmpty())
}

func TestLookupUnknownOrderIsNotFoundNotError(t *testing.T) {
	store := &fakeStore{}

	order, err := store.GetOrderByID(context.Background(), "ORD-000-jamaiscree")
	require.NoError(t, err)
	assert.Nil(t, order)
}
