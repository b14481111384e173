package order

import (
	"log"
	"net/http"

	"audiophile_back_end/internal/cache"
	"audiophile_back_end/internal/orders"

	"github.com/gin-gonic/gin"
)

var store orders.Store = orders.NewScyllaStore()

//
// ✅ GET /api/orders/:orderId
//
// L'absence d'une commande est un résultat normal (lien périmé, id retapé) :
// on renvoie un 404 "found: false" que le storefront affiche tel quel.
func GetOrderByID(c *gin.Context) {
	orderID := c.Param("orderId")

	order, err := cache.GetOrderFromCache(c.Request.Context(), store, orderID)
	if err != nil {
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur récupération commande"})
		return
	}

	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"found":   false,
			"orderId": orderID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found": true,
		"order": order,
	})
}
