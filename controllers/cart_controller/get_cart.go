package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
	"github.com/aboayman-oss/Sakr-Store/services"
)

// GetCart godoc
// @Summary Get the cart view
// @Description Returns the rendered cart: lines in catalog order, grand total, and the badge counter. Entries for products gone from the catalog are skipped.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart := cartServiceFor(c).Get(ctx)

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		// The cart itself is fine; only the join against the catalog
		// degrades. Counter still works, lines cannot be resolved.
		log.Printf("[store.cart] catalog unavailable: %v", err)
		catalog = nil
	}

	view := services.BuildCartView(cart, catalog)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", view))
}
