package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
)

// ClearCart godoc
// @Summary Clear the cart
// @Description Deletes the whole persisted cart.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart cleared"
// @Failure 500 {object} models.ApiResponse "Cart could not be cleared"
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := cartServiceFor(c).Clear(ctx); err != nil {
		log.Printf("[store.cart.clear] failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not clear your cart, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", gin.H{
		"item_count": 0,
	}))
}
