package cart

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"audiophile_back_end/internal/models"
)

const (
	// Frais de port fixes dès que le panier n'est pas vide, en unités mineures
	ShippingCost = 50
	// TVA incluse dans le total, calculée sur le sous-total
	VATRate = 0.20
)

// Slot est l'emplacement durable du panier : lu une fois au chargement,
// réécrit intégralement à chaque mutation (jamais patché partiellement).
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Engine possède les lignes du panier d'une session et dérive les totaux.
// Une instance par session, injectée là où on en a besoin — pas d'état global.
type Engine struct {
	slot  Slot
	key   string
	items []models.CartItem
}

func NewEngine(slot Slot, key string) *Engine {
	return &Engine{slot: slot, key: key}
}

// Load recharge le panier depuis le slot durable. Une valeur corrompue ou
// illisible est traitée comme un panier vide, jamais remontée en erreur.
func (e *Engine) Load(ctx context.Context) {
	e.items = nil

	data, err := e.slot.Get(ctx, e.key)
	if err != nil || data == "" {
		return
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("⚠️ Panier corrompu pour %s, on repart à vide: %v", e.key, err)
		return
	}
	e.items = items
}

// Items retourne une copie des lignes, dans l'ordre d'insertion
func (e *Engine) Items() []models.CartItem {
	out := make([]models.CartItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) IsEmpty() bool {
	return len(e.items) == 0
}

// AddToCart ajoute un instantané du produit (id, nom, prix, image à l'instant T).
// Si la ligne existe déjà, la quantité est incrémentée. Une quantité < 1 est
// ramenée à 1 : la précondition est imposée ici, pas laissée à l'appelant.
func (e *Engine) AddToCart(ctx context.Context, product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	for i := range e.items {
		if e.items[i].ProductID == product.ID {
			e.items[i].Quantity += quantity
			return e.save(ctx)
		}
	}

	e.items = append(e.items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.Images.Mobile,
	})
	return e.save(ctx)
}

// RemoveFromCart retire la ligne correspondante ; absent = no-op, pas une erreur
func (e *Engine) RemoveFromCart(ctx context.Context, productID string) error {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return e.save(ctx)
		}
	}
	return nil
}

// UpdateQuantity écrase la quantité d'une ligne. Une quantité < 1 équivaut à
// une suppression : aucune ligne avec quantity < 1 n'est jamais stockée.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return e.RemoveFromCart(ctx, productID)
	}

	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items[i].Quantity = quantity
			return e.save(ctx)
		}
	}
	return nil
}

// ClearCart vide entièrement le panier
func (e *Engine) ClearCart(ctx context.Context) error {
	e.items = nil
	return e.save(ctx)
}

// Totals dérive les totaux à la demande. Fonction pure : pas d'effet de bord,
// deux appels sans mutation donnent exactement le même résultat.
func (e *Engine) Totals() models.CartTotals {
	subtotal := 0
	for _, item := range e.items {
		subtotal += item.Price * item.Quantity
	}

	shipping := 0
	if len(e.items) > 0 {
		shipping = ShippingCost
	}

	vat := int(math.Round(float64(subtotal) * VATRate))

	return models.CartTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		VAT:        vat,
		GrandTotal: subtotal + shipping + vat,
	}
}

// ItemCount est la somme des quantités, pas le nombre de lignes
func (e *Engine) ItemCount() int {
	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

// save réécrit l'intégralité du panier dans le slot durable
func (e *Engine) save(ctx context.Context) error {
	items := e.items
	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return e.slot.Set(ctx, e.key, string(data))
}
