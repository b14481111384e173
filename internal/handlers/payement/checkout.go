package pa

import (
	"errors"
	"log"
	"net/http"

	cartengine "audiophile_back_end/internal/cart"
	"audiophile_back_end/internal/checkout"
	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/orders"
	"audiophile_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// L'orchestrateur est assemblé une fois : persistance ScyllaDB + envoi SMTP
var flow = checkout.NewOrchestrator(orders.NewScyllaStore(), utils.NewMailSender())

func sessionEngine(c *gin.Context) (*cartengine.Engine, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session absente"})
		return nil, false
	}

	e := cartengine.NewEngine(cartengine.NewRedisSlot(database.Redis), cartengine.SessionKey(sessionID))
	e.Load(c.Request.Context())
	return e, true
}

//
// 🟢 POST /api/checkout
//
// Valide le formulaire et crée la commande. Le panier reste intact jusqu'à
// l'acquittement (POST /api/checkout/confirm) : en cas d'échec le client
// peut simplement retenter.
func Checkout(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	order, fieldErrs, err := flow.Submit(c.Request.Context(), e, form)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation échouée",
			"fields": fieldErrs,
		})
		return
	}
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}
	if err != nil {
		log.Println("❌ Erreur persistance commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement commande. Réessayez."})
		return
	}

	log.Printf("✅ Commande %s créée (%d articles)", order.OrderID, e.ItemCount())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Commande enregistrée",
		"orderId": order.OrderID,
		"order":   order,
	})
}

//
// 🟢 POST /api/checkout/confirm
//
// Acquittement de la modale de confirmation : vide le panier et renvoie la
// cible de navigation portant l'identifiant de commande.
func ConfirmCheckout(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	var input struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId requis"})
		return
	}

	page, err := flow.Confirm(c.Request.Context(), e, input.OrderID)
	if err != nil {
		log.Println("❌ Erreur vidage panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Commande confirmée",
		"navigation": page,
	})
}
