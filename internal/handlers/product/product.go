package product

import (
	"net/http"
	"strings"

	"audiophile_back_end/internal/catalog"
	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/models"
	"audiophile_back_end/internal/service"
	"audiophile_back_end/internal/services"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /api/products?category=
//
func GetProducts(c *gin.Context) {
	category := c.Query("category")

	var products []models.Product
	if category != "" {
		if !catalog.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Catégorie inconnue: " + category})
			return
		}
		products = catalog.ByCategory(category)
	} else {
		products = catalog.All()
	}

	for i := range products {
		products[i] = services.ResolveProductImages(c.Request.Context(), products[i])
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 GET /api/products/:slug
//
func GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	p, ok := catalog.BySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, services.ResolveProductImages(c.Request.Context(), p))
}

//
// 🔍 GET /api/search?q=
//
func SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre q requis"})
		return
	}

	if database.Elastic != nil {
		results, err := service.SearchProducts(c.Request.Context(), query)
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"products": results})
			return
		}
		// On retombe sur la recherche locale plutôt que d'échouer
	}

	var results []models.Product
	lower := strings.ToLower(query)
	for _, p := range catalog.All() {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Description), lower) ||
			strings.Contains(strings.ToLower(p.Category), lower) {
			results = append(results, p)
		}
	}
	if results == nil {
		results = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": results})
}
