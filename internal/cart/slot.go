package cart

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix est l'espace de noms fixe des paniers dans Redis
const KeyPrefix = "cart:"

// SlotTTL : un panier abandonné expire au bout de 30 jours
const SlotTTL = 30 * 24 * time.Hour

// RedisSlot stocke le panier sérialisé dans Redis et notifie les websockets
// abonnés à la clé via pub/sub à chaque réécriture.
type RedisSlot struct {
	client *redis.Client
}

func NewRedisSlot(client *redis.Client) *RedisSlot {
	return &RedisSlot{client: client}
}

func (s *RedisSlot) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // absence de panier, pas une erreur
	}
	if err != nil {
		return "", err
	}
	return data, nil
}

func (s *RedisSlot) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, key, value, SlotTTL).Err(); err != nil {
		return err
	}

	// Réveille les connexions websocket de la session
	s.client.Publish(ctx, key, "updated")
	return nil
}

// SessionKey construit la clé du slot pour une session donnée
func SessionKey(sessionID string) string {
	return KeyPrefix + sessionID
}
