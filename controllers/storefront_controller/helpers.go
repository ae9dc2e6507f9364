package storefront_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterParams reads the transient filter state from the query
// string. It lives per request; nothing here touches the store.
func parseFilterParams(c *gin.Context) models.FilterParams {
	params := models.FilterParams{
		Search:   c.Query("q"),
		Category: c.DefaultQuery("category", models.CategoryAll),
		Sort:     models.ParseSortOrder(c.DefaultQuery("sort", string(models.SortDefault))),
	}

	if raw := c.Query("maxPrice"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil && maxPrice >= 0 {
			params.MaxPrice = &maxPrice
		}
	}

	return params
}
