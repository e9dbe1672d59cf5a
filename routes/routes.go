package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires up every route group on the engine.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes
	SetupAuthRoutes(r, db)

	// Storefront routes (catalog, cart, wishlist, checkout)
	SetupStorefrontRoutes(r, db)

	// Admin routes (session auth + admin flag)
	SetupAdminRoutes(r, db)
}
