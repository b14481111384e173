package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/models"

	"github.com/gocql/gocql"
)

// Store est le collaborateur de persistance des commandes.
// GetOrderByID retourne (nil, nil) quand la commande n'existe pas :
// l'absence est un résultat normal, pas une erreur.
type Store interface {
	CreateOrder(ctx context.Context, order models.Order) error
	GetOrderByID(ctx context.Context, orderID string) (*models.Order, error)
}

// ScyllaStore persiste les commandes dans le keyspace orders.
// Les lignes sont stockées en JSON dans la ligne de commande :
// une commande est immuable et toujours relue en entier.
type ScyllaStore struct{}

func NewScyllaStore() *ScyllaStore {
	return &ScyllaStore{}
}

func (s *ScyllaStore) CreateOrder(ctx context.Context, order models.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("erreur sérialisation lignes: %v", err)
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	return session.Query(database.InsertOrderCQL,
		order.OrderID, order.Customer.Name, order.Customer.Email, order.Customer.Phone,
		order.Shipping.Address, order.Shipping.City, order.Shipping.Country, order.Shipping.Zip,
		string(itemsJSON), order.Totals.Subtotal, order.Totals.Shipping, order.Totals.VAT,
		order.Totals.GrandTotal, order.PaymentMethod, order.Timestamp, order.Status,
	).WithContext(ctx).Exec()
}

func (s *ScyllaStore) GetOrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var (
		order     models.Order
		itemsJSON string
	)

	err = session.Query(database.SelectOrderByIDCQL, orderID).WithContext(ctx).Scan(
		&order.OrderID, &order.Customer.Name, &order.Customer.Email, &order.Customer.Phone,
		&order.Shipping.Address, &order.Shipping.City, &order.Shipping.Country, &order.Shipping.Zip,
		&itemsJSON, &order.Totals.Subtotal, &order.Totals.Shipping, &order.Totals.VAT,
		&order.Totals.GrandTotal, &order.PaymentMethod, &order.Timestamp, &order.Status,
	)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, nil // introuvable : résultat normal
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		// Instantané corrompu : traité comme une absence de donnée
		return nil, nil
	}

	return &order, nil
}
