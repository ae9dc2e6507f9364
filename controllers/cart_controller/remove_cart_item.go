package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
)

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Description Deletes the entry entirely, whatever its quantity.
// @Tags Storefront - Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product removed from cart"
// @Failure 500 {object} models.ApiResponse "Cart could not be saved"
// @Router /store/cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := cartServiceFor(c).Remove(ctx, id)
	if err != nil {
		log.Printf("[store.cart.remove] persist failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not save your cart, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product removed from cart", gin.H{
		"item_count": cart.TotalItemCount(),
	}))
}
