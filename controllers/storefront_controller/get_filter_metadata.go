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

// GetFilterMetadata godoc
// @Summary Get storefront filter metadata
// @Description Returns the category facet, catalog price range, and the default price ceiling for an optional category.
// @Tags Storefront - Filters
// @Produce json
// @Param category query string false "Category to calibrate the default ceiling for" default(All)
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		log.Printf("[store.filters] catalog unavailable: %v", err)
		c.JSON(http.StatusOK, models.ApiResponse{
			Message:         "Filters are temporarily unavailable",
			Data:            models.FilterMetadata{Categories: []string{}},
			RequestedEntity: c.Request.Method + " " + c.FullPath(),
		})
		return
	}

	category := c.DefaultQuery("category", models.CategoryAll)

	metadata := models.FilterMetadata{
		Categories:     services.CategoryFacet(catalog),
		PriceRange:     services.PriceRange(catalog),
		DefaultCeiling: services.DefaultCeiling(catalog, category),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}
