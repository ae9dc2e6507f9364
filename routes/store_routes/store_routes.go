package store_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	cart "github.com/aboayman-oss/Sakr-Store/controllers/cart_controller"
	checkout "github.com/aboayman-oss/Sakr-Store/controllers/checkout_controller"
	storefront "github.com/aboayman-oss/Sakr-Store/controllers/storefront_controller"
	"github.com/aboayman-oss/Sakr-Store/middleware"
)

func SetupStoreRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, anonymous session only)
	store := router.Group("/store")
	store.Use(middleware.CartSession())
	store.Use(middleware.RateLimiter(120, time.Minute))

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", storefront.GetStorefrontProducts)
		products.GET("/:id", storefront.GetStorefrontProductByID)
	}

	store.GET("/filters/metadata", storefront.GetFilterMetadata)

	// Cart routes
	store.GET("/cart", cart.GetCart)
	store.DELETE("/cart", cart.ClearCart)
	items := store.Group("/cart/items")
	{
		items.POST("/:id", cart.AddCartItem)
		items.PUT("/:id", cart.UpdateCartItem)
		items.DELETE("/:id", cart.RemoveCartItem)
	}

	// Theme preference
	store.GET("/theme", cart.GetTheme)
	store.PUT("/theme", cart.UpdateTheme)

	// Checkout (hand-off to the messaging channel happens client-side)
	store.POST("/checkout", checkout.CreateCheckout)
	store.GET("/checkout/summary.pdf", checkout.DownloadOrderSummaryPDF)
}
