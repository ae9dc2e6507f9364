package cart_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/aboayman-oss/Sakr-Store/config"
	"github.com/aboayman-oss/Sakr-Store/kvstore"
	"github.com/aboayman-oss/Sakr-Store/middleware"
	"github.com/aboayman-oss/Sakr-Store/services"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// cartServiceFor builds the cart service bound to this visitor's
// session namespace in the shared store.
func cartServiceFor(c *gin.Context) *services.CartService {
	sid := middleware.SessionID(c)
	return services.NewCartService(kvstore.Namespaced(config.Store, "session:"+sid+":"))
}
