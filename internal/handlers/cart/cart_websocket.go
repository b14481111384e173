package cart

import (
	"log"
	"net/http"
	"time"

	engine "audiophile_back_end/internal/cart"
	"audiophile_back_end/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// CartWebSocket gère la synchronisation temps réel du panier : chaque
// réécriture du slot Redis publie sur le canal de la session et on repousse
// l'état complet au client.
func CartWebSocket(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session absente"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	key := engine.SessionKey(sessionID)

	// S'abonner au canal Redis de cette session
	pubsub := database.Redis.Subscribe(ctx, key)
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation panier activée",
	})

	for {
		select {
		case msg, open := <-ch:
			if !open {
				return
			}
			if msg.Payload != "updated" {
				continue
			}

			e := engine.NewEngine(engine.NewRedisSlot(database.Redis), key)
			e.Load(ctx)

			response := map[string]interface{}{
				"type":   "cart_updated",
				"items":  e.Items(),
				"totals": e.Totals(),
				"count":  e.ItemCount(),
			}

			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
