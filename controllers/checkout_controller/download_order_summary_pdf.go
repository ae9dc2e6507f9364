package checkout_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/aboayman-oss/Sakr-Store/cache"
	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
	"github.com/aboayman-oss/Sakr-Store/services"
)

// DownloadOrderSummaryPDF godoc
// @Summary Download the current cart as a PDF
// @Description Generate and download an order summary PDF for the current cart.
// @Tags Storefront - Checkout
// @Produce octet-stream
// @Param name query string false "Customer name"
// @Param address query string false "Customer address"
// @Param phone query string false "Customer phone"
// @Success 200 "PDF file"
// @Failure 422 {object} models.ApiResponse "Cart is empty"
// @Failure 500 {object} models.ApiResponse "Catalog unavailable"
// @Router /store/checkout/summary.pdf [get]
func DownloadOrderSummaryPDF(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cart := cartServiceFor(c).Get(ctx)
	if len(cart) == 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Your cart is empty. Add products before placing an order."))
		return
	}

	catalog, err := catalog_cache.Fetch(ctx)
	if err != nil {
		log.Printf("[store.checkout.pdf] catalog unavailable: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to prepare order, please try again later"))
		return
	}

	customer := services.CustomerInfo{
		Name:    c.Query("name"),
		Address: c.Query("address"),
		Phone:   c.Query("phone"),
	}

	view := services.BuildCartView(cart, catalog)
	pdfBuffer := services.GenerateOrderPDF(view.Lines, view.GrandTotal, customer)

	c.Header("Content-Disposition", `attachment; filename="order-summary.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[store.checkout.pdf] order summary downloaded (%d lines)", len(view.Lines))
}
