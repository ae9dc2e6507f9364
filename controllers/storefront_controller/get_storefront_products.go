package storefront_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
	"github.com/aboayman-oss/Sakr-Store/services"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve catalog products with optional search, category, sort, and price ceiling filters.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search query (name or description, case-insensitive)"
// @Param category query string false "Category filter (All | Discounts | category name)" default(All)
// @Param sort query string false "Sort order (default | price-asc | price-desc)" default(default)
// @Param maxPrice query number false "Price ceiling (effective price)"
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		// Source-Unavailable is non-fatal: the storefront renders an
		// empty view with a notice, not an error page.
		log.Printf("[store.products] catalog unavailable: %v", err)
		c.JSON(http.StatusOK, models.ApiResponse{
			Message:         "Products are temporarily unavailable",
			Data:            []models.ProductCard{},
			RequestedEntity: c.Request.Method + " " + c.FullPath(),
		})
		return
	}

	params := parseFilterParams(c)
	results := services.QueryProducts(catalog, params)
	cards := services.BuildProductCards(results, services.DefaultDescriptionLimit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", cards))
}
