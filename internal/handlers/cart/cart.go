package cart

import (
	"log"
	"net/http"

	engine "audiophile_back_end/internal/cart"
	"audiophile_back_end/internal/catalog"
	"audiophile_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

// sessionEngine charge le moteur de panier de la session courante
func sessionEngine(c *gin.Context) (*engine.Engine, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session absente"})
		return nil, false
	}

	e := engine.NewEngine(engine.NewRedisSlot(database.Redis), engine.SessionKey(sessionID))
	e.Load(c.Request.Context())
	return e, true
}

func cartReply(e *engine.Engine) gin.H {
	return gin.H{
		"items":  e.Items(),
		"totals": e.Totals(),
		"count":  e.ItemCount(),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartReply(e))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	// 🧩 Instantané du produit depuis le catalogue statique
	product, found := catalog.ByID(input.ProductID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	if err := e.AddToCart(c.Request.Context(), product, input.Quantity); err != nil {
		log.Println("❌ Erreur sauvegarde panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	reply := cartReply(e)
	reply["message"] = "Produit ajouté au panier"
	c.JSON(http.StatusOK, reply)
}

//
// 🔁 PATCH /api/cart/:productId
//
func UpdateQuantity(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Quantité < 1 = suppression de la ligne, le moteur s'en charge
	if err := e.UpdateQuantity(c.Request.Context(), c.Param("productId"), input.Quantity); err != nil {
		log.Println("❌ Erreur sauvegarde panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartReply(e))
}

//
// ❌ DELETE /api/cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	if err := e.RemoveFromCart(c.Request.Context(), c.Param("productId")); err != nil {
		log.Println("❌ Erreur sauvegarde panier:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	reply := cartReply(e)
	reply["message"] = "Produit supprimé du panier"
	c.JSON(http.StatusOK, reply)
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	e, ok := sessionEngine(c)
	if !ok {
		return
	}

	if err := e.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
