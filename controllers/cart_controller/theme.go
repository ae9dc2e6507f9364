package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/models"
)

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme godoc
// @Summary Get the theme preference
// @Description Returns the persisted theme, defaulting to light.
// @Tags Storefront - Theme
// @Produce json
// @Success 200 {object} models.ApiResponse "Theme fetched"
// @Router /store/theme [get]
func GetTheme(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	theme := cartServiceFor(c).Theme(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme fetched", gin.H{"theme": theme}))
}

// UpdateTheme godoc
// @Summary Set the theme preference
// @Description Persists a light/dark theme preference.
// @Tags Storefront - Theme
// @Accept json
// @Produce json
// @Param request body themeRequest true "Theme (light | dark)"
// @Success 200 {object} models.ApiResponse "Theme updated"
// @Failure 400 {object} models.ApiResponse "Unknown theme"
// @Failure 500 {object} models.ApiResponse "Theme could not be saved"
// @Router /store/theme [put]
func UpdateTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if !models.ValidTheme(req.Theme) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Theme must be light or dark"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := cartServiceFor(c).SetTheme(ctx, req.Theme); err != nil {
		log.Printf("[store.theme] persist failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not save your theme, please try again"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme updated", gin.H{"theme": req.Theme}))
}
