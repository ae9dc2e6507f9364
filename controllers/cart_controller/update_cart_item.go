package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
)

type updateCartItemRequest struct {
	// Quantity is an absolute set, not a delta. Zero or negative
	// removes the entry.
	Quantity int `json:"quantity"`
}

// UpdateCartItem godoc
// @Summary Set a cart item's quantity
// @Description Sets the quantity for the product to an exact value; zero or negative removes it.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body updateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 500 {object} models.ApiResponse "Cart could not be saved"
// @Router /store/cart/items/{id} [put]
func UpdateCartItem(c *gin.Context) {
	id := c.Param("id")

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart, err := cartServiceFor(c).SetQuantity(ctx, id, req.Quantity)
	if err != nil {
		log.Printf("[store.cart.update] persist failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not save your cart, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", gin.H{
		"item_count": cart.TotalItemCount(),
	}))
}
