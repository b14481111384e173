package cache

import (
	"context"
	"encoding/json"
	"time"

	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/models"
	"audiophile_back_end/internal/orders"
)

const OrderCacheTTL = 5 * time.Minute

// GetOrderFromCache récupère une commande depuis Redis ou ScyllaDB.
// Une commande est immuable après création, le cache ne peut pas être périmé.
// Retourne (nil, nil) quand la commande n'existe pas.
func GetOrderFromCache(ctx context.Context, store orders.Store, orderID string) (*models.Order, error) {
	key := "order:" + orderID

	// 1. Essayer le cache Redis
	data, err := database.Redis.Get(ctx, key).Result()
	if err == nil {
		var order models.Order
		if json.Unmarshal([]byte(data), &order) == nil {
			return &order, nil
		}
	}

	// 2. Récupérer de ScyllaDB
	order, err := store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		// On ne met pas l'absence en cache : un id inconnu reste introuvable
		return nil, nil
	}

	// 3. Mettre en cache
	jsonData, _ := json.Marshal(order)
	database.Redis.Set(ctx, key, jsonData, OrderCacheTTL)

	return order, nil
}
