package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Increments the quantity for the product by one, inserting at one.
// @Tags Storefront - Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product added to cart"
// @Failure 500 {object} models.ApiResponse "Cart could not be saved"
// @Router /store/cart/items/{id} [post]
func AddCartItem(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := cartServiceFor(c).Add(ctx, id)
	if err != nil {
		// Write failed: the add did not happen, and we say so instead
		// of claiming success.
		log.Printf("[store.cart.add] persist failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not save your cart, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product added to cart", gin.H{
		"item_count": cart.TotalItemCount(),
	}))
}
