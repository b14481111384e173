package routes

import (
	"net/http"
	"os"
	"time"

	"audiophile_back_end/internal/handlers/cart"
	"audiophile_back_end/internal/handlers/order"
	pa "audiophile_back_end/internal/handlers/payement"
	"audiophile_back_end/internal/handlers/product"
	"audiophile_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(), middleware.GuestSession())

	// Catalogue
	api.GET("/products", product.GetProducts)
	api.GET("/products/:slug", product.GetProductBySlug)
	api.GET("/search", middleware.SearchRateLimit(), product.SearchProducts)

	// Panier
	api.GET("/cart", cart.GetCart)
	api.GET("/cart/ws", cart.CartWebSocket)
	api.POST("/cart/add", middleware.CartRateLimit(), cart.AddToCart)
	api.PATCH("/cart/:productId", cart.UpdateQuantity)
	api.DELETE("/cart/:productId", cart.RemoveFromCart)
	api.DELETE("/cart", cart.ClearCart)

	// Checkout
	api.POST("/checkout", middleware.CheckoutRateLimit(), pa.Checkout)
	api.POST("/checkout/confirm", pa.ConfirmCheckout)

	// Commandes
	api.GET("/orders/:orderId", order.GetOrderByID)
}
