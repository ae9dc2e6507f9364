package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/kvstore"
	"github.com/aboayman-oss/Sakr-Store/middleware"
	"github.com/aboayman-oss/Sakr-Store/models"
	"github.com/aboayman-oss/Sakr-Store/services"
)

// cartServiceFor builds the cart service bound to this visitor's
// session namespace in the shared store.
func cartServiceFor(c *gin.Context) *services.CartService {
	sid := middleware.SessionID(c)
	return services.NewCartService(kvstore.Namespaced(config.Store, "session:"+sid+":"))
}

// CreateCheckout godoc
// @Summary Check out the cart
// @Description Builds the order summary text and the WhatsApp hand-off URL, then clears the cart. The client performs the navigation; no response from the channel is awaited.
// @Tags Storefront - Checkout
// @Accept json
// @Produce json
// @Param request body services.CustomerInfo true "Customer details"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResult}
// @Failure 422 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Catalog unavailable"
// @Router /store/checkout [post]
func CreateCheckout(c *gin.Context) {
	var customer services.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := cartServiceFor(c)
	cart := svc.Get(ctx)

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		// Unlike browsing, checkout genuinely needs the catalog to
		// price the order, so this one is an error.
		log.Printf("[store.checkout] catalog unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to prepare order, please try again later"))
		return
	}

	summary, err := services.Summarize(cart, catalog, customer)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Your cart is empty. Add products before placing an order."))
		return
	}

	result := models.CheckoutResult{
		Summary:    summary,
		HandoffURL: services.HandoffURL(config.WhatsAppNumber(), summary),
	}

	// The original storefront empties the cart right before handing
	// off. A failed clear is logged, not fatal; the order text is
	// already built.
	if err := svc.Clear(ctx); err != nil {
		log.Printf("[store.checkout] failed to clear cart after hand-off: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order ready for hand-off", result))
}
