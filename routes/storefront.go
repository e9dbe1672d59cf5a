package routes

import (
	addressControllers "github.com/alqablan89-create/activewear-backend/controllers/address"
	cartControllers "github.com/alqablan89-create/activewear-backend/controllers/cart"
	discountControllers "github.com/alqablan89-create/activewear-backend/controllers/discount"
	orderControllers "github.com/alqablan89-create/activewear-backend/controllers/order"
	paymentControllers "github.com/alqablan89-create/activewear-backend/controllers/payment"
	productControllers "github.com/alqablan89-create/activewear-backend/controllers/product"
	settingsControllers "github.com/alqablan89-create/activewear-backend/controllers/settings"
	storageControllers "github.com/alqablan89-create/activewear-backend/controllers/storage"
	wishlistControllers "github.com/alqablan89-create/activewear-backend/controllers/wishlist"
	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB) {
	// Catalog
	r.GET("/api/products", productControllers.GetProducts(db))
	r.GET("/api/products/new", productControllers.GetNewProducts(db))
	r.GET("/api/products/featured", productControllers.GetFeaturedProducts(db))
	r.GET("/api/products/category/:categoryId", productControllers.GetProductsByCategory(db))
	r.GET("/api/products/:id", productControllers.GetProductByID(db))
	r.GET("/api/categories", productControllers.GetAllCategories(db))

	// Site content
	r.GET("/api/settings", settingsControllers.GetSettings(db))

	// Stored images
	r.GET("/objects/*objectPath", storageControllers.ServeObject())

	// Cart (works for both guests and logged-in users)
	r.GET("/api/cart", cartControllers.GetCart(db))
	r.POST("/api/cart", cartControllers.AddCartItem(db))
	r.PUT("/api/cart/:id", cartControllers.UpdateCartItem(db))
	r.DELETE("/api/cart/:id", cartControllers.RemoveCartItem(db))
	r.DELETE("/api/cart", cartControllers.ClearCart(db))

	// Wishlist (guest or user scoped, like the cart)
	r.GET("/api/wishlist", wishlistControllers.GetWishlist(db))
	r.POST("/api/wishlist", wishlistControllers.AddToWishlist(db))
	r.DELETE("/api/wishlist/:id", wishlistControllers.RemoveFromWishlist(db))

	// Checkout
	r.POST("/api/discounts/validate", discountControllers.ValidateCode(db))
	r.POST("/api/create-payment-intent", paymentControllers.CreatePaymentIntent())
	r.POST("/api/orders", orderControllers.PlaceOrderHandler(db))

	// Account (login required)
	account := r.Group("/api", middleware.RequireAuth())
	{
		account.GET("/orders", orderControllers.GetMyOrders(db))
		account.GET("/addresses", addressControllers.GetAddresses(db))
		account.POST("/addresses", addressControllers.CreateAddress(db))
		account.PUT("/addresses/:id", addressControllers.UpdateAddress(db))
		account.DELETE("/addresses/:id", addressControllers.DeleteAddress(db))
	}
}
