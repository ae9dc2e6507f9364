// @title Sakr Store API
// @version 1.0
// @description Storefront backend for Sakr Store
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/routes/store_routes"
	"github.com/aboayman-oss/Sakr-Store/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Persistent key-value store (Redis, or in-memory fallback)
	config.InitStore()

	// Catalog Source: products.json path or URL, fetched lazily and
	// memoized for the session
	catalog_cache.Init(catalog_cache.SourceFor(config.CatalogURL()))
	log.Println("✅ Catalog source:", config.CatalogURL())

	if err := services.InitSessionService(config.SessionSecret()); err != nil {
		log.Fatalf("❌ Failed to init session service: %v", err)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	store_routes.SetupStoreRoutes(api)

	port := config.Port()
	log.Println("✅ Sakr Store backend listening on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
