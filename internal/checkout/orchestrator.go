package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"audiophile_back_end/internal/cart"
	"audiophile_back_end/internal/models"
	"audiophile_back_end/internal/nav"
	"audiophile_back_end/internal/orders"
)

// ErrEmptyCart : le checkout est refusé d'emblée sur panier vide,
// même si le formulaire est valide
var ErrEmptyCart = errors.New("le panier est vide")

// ConfirmationSender est le collaborateur d'envoi de l'email de confirmation.
// Son échec ne doit JAMAIS faire échouer le checkout : la commande existe déjà.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, order models.Order) (messageID string, err error)
}

// Orchestrator pilote la soumission du checkout : validation, assemblage de la
// commande, persistance, puis notification best-effort.
type Orchestrator struct {
	store  orders.Store
	sender ConfirmationSender
}

func NewOrchestrator(store orders.Store, sender ConfirmationSender) *Orchestrator {
	return &Orchestrator{store: store, sender: sender}
}

// Submit valide le formulaire et persiste la commande. En cas d'échec de
// validation ou de persistance, le panier reste intact pour permettre une
// nouvelle tentative — il n'est vidé qu'au moment du Confirm.
func (o *Orchestrator) Submit(ctx context.Context, engine *cart.Engine, form Form) (models.Order, map[string]string, error) {
	if fieldErrs := Validate(form); len(fieldErrs) > 0 {
		return models.Order{}, fieldErrs, nil
	}

	if engine.IsEmpty() {
		return models.Order{}, nil, ErrEmptyCart
	}

	order := models.Order{
		OrderID: orders.NewOrderID(),
		Customer: models.Customer{
			Name:  form.Name,
			Email: form.Email,
			Phone: form.Phone,
		},
		Shipping: models.ShippingAddress{
			Address: form.Address,
			City:    form.City,
			Country: form.Country,
			Zip:     form.Zip,
		},
		Items:         engine.Items(),
		Totals:        engine.Totals(),
		PaymentMethod: form.PaymentMethod,
		Timestamp:     time.Now().UnixMilli(),
		Status:        models.OrderStatusPending,
	}

	if err := o.store.CreateOrder(ctx, order); err != nil {
		return models.Order{}, nil, err
	}

	// Notification indépendante de la persistance : pas de rollback croisé.
	// On détache du contexte de la requête, l'envoi peut lui survivre.
	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		msgID, err := o.sender.SendOrderConfirmation(sendCtx, order)
		if err != nil {
			log.Printf("⚠️ Échec envoi confirmation pour %s: %v", order.OrderID, err)
			return
		}
		log.Printf("📧 Confirmation envoyée pour %s (message %s)", order.OrderID, msgID)
	}()

	return order, nil, nil
}

// Confirm acquitte la confirmation côté client (fermeture de la modale) :
// c'est seulement ici que le panier est vidé et que la navigation bascule
// vers la page de confirmation portant l'identifiant de commande.
func (o *Orchestrator) Confirm(ctx context.Context, engine *cart.Engine, orderID string) (nav.Page, error) {
	if err := engine.ClearCart(ctx); err != nil {
		return nav.Page{}, err
	}
	return nav.OrderConfirmation(orderID), nil
}
