package routes

import (
	adminControllers "github.com/alqablan89-create/activewear-backend/controllers/admin"
	discountControllers "github.com/alqablan89-create/activewear-backend/controllers/discount"
	orderControllers "github.com/alqablan89-create/activewear-backend/controllers/order"
	productControllers "github.com/alqablan89-create/activewear-backend/controllers/product"
	settingsControllers "github.com/alqablan89-create/activewear-backend/controllers/settings"
	storageControllers "github.com/alqablan89-create/activewear-backend/controllers/storage"
	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin", middleware.RequireAdmin(db))
	{
		// Catalog management
		admin.POST("/products", productControllers.CreateProduct(db))
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))
		admin.GET("/products/export-excel", productControllers.ExportProductsToExcel(db))
		admin.POST("/products/import-excel", productControllers.ImportProductsFromExcel(db))
		admin.POST("/categories", productControllers.CreateCategory(db))
		admin.PUT("/categories/:id", productControllers.UpdateCategory(db))
		admin.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// Orders
		admin.GET("/orders", orderControllers.GetAllOrders(db))
		admin.GET("/orders/feed", orderControllers.OrderFeedHandler)
		admin.GET("/orders/:id", orderControllers.GetOrderByID(db))
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))

		// Discount codes
		admin.GET("/discounts", discountControllers.ListDiscounts(db))
		admin.POST("/discounts", discountControllers.CreateDiscount(db))
		admin.PUT("/discounts/:id", discountControllers.UpdateDiscount(db))
		admin.DELETE("/discounts/:id", discountControllers.DeleteDiscount(db))

		// Users and dashboard
		admin.GET("/users", adminControllers.GetAllUsers(db))
		admin.GET("/users/:id", adminControllers.GetUserByID(db))
		admin.GET("/stats", adminControllers.GetStats(db))

		// Site content
		admin.PUT("/settings/:key", settingsControllers.UpsertSetting(db))
	}

	// Image uploads keep their own path for the upload widget
	r.POST("/api/objects/upload", middleware.RequireAdmin(db), storageControllers.GetUploadURL())
}
