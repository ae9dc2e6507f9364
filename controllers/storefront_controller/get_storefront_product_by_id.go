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

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Retrieve one product card by its id.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		log.Printf("[store.product] catalog unavailable: %v", err)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	for _, p := range catalog {
		if p.ID == id {
			card := services.BuildProductCard(p, services.DefaultDescriptionLimit)
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", card))
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
