package main

import (
	"context"
	"log"
	"os"

	"audiophile_back_end/internal/catalog"
	"audiophile_back_end/internal/config"
	"audiophile_back_end/internal/database"
	"audiophile_back_end/internal/routes"
	"audiophile_back_end/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	database.ConnectDatabases()

	// ✅ Initialiser les prepared statements pour améliorer les performances
	database.InitPreparedStatements()

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	// ✅ Indexer le catalogue statique pour la recherche
	service.IndexCatalog(catalog.All())

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Audiophile lancé sur le port", port)
	r.Run(":" + port)
}

// warmupRedisCache pré-chauffe le cache Redis pour éviter la latence du premier appel
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}
