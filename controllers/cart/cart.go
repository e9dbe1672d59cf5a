package cartControllers

import (
	"errors"
	"net/http"

	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// FindOrCreateCart returns the single cart owned by the identity, creating it
// on first access. The unique owner indexes make the create race-safe: a
// concurrent insert for the same identity fails and the existing row is
// fetched instead.
func FindOrCreateCart(db *gorm.DB, ident middleware.Identity) (models.Cart, error) {
	var cart models.Cart
	query := ownerScope(db, ident)

	err := query.First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	cart = models.Cart{}
	if ident.Authenticated() {
		cart.UserID = &ident.UserID
	} else {
		cart.SessionID = &ident.SessionID
	}
	if createErr := db.Create(&cart).Error; createErr != nil {
		// Lost the race against another request for the same identity.
		if fetchErr := ownerScope(db, ident).First(&cart).Error; fetchErr == nil {
			return cart, nil
		}
		return cart, createErr
	}
	return cart, nil
}

func ownerScope(db *gorm.DB, ident middleware.Identity) *gorm.DB {
	if ident.Authenticated() {
		return db.Where("user_id = ?", ident.UserID)
	}
	return db.Where("session_id = ?", ident.SessionID)
}

// LoadCartItems returns the cart's lines with their products and categories,
// for display and for discount evaluation.
func LoadCartItems(db *gorm.DB, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").Preload("Product.Category").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		cart, err := FindOrCreateCart(db, ident)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items, err := LoadCartItems(db, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}

		summary := SummarizeCart(items)
		c.JSON(http.StatusOK, gin.H{
			"id":             cart.ID,
			"items":          items,
			"subtotal":       summary.Subtotal,
			"bundleDiscount": summary.BundleDiscount,
			"total":          summary.Total,
		})
	}
}

// POST /api/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		cart, err := FindOrCreateCart(db, ident)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		// Same variant already in the cart: sum the quantities instead of
		// adding a second line.
		var item models.CartItem
		err = db.Where(
			"cart_id = ? AND product_id = ? AND selected_color = ? AND selected_size = ?",
			cart.ID, product.ID, input.SelectedColor, input.SelectedSize,
		).First(&item).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				CartID:        cart.ID,
				ProductID:     product.ID,
				Quantity:      input.Quantity,
				SelectedColor: input.SelectedColor,
				SelectedSize:  input.SelectedSize,
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, item)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity += input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /api/cart/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)
		itemID := c.Param("id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, status, err := ownedCartItem(db, ident, itemID)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)
		itemID := c.Param("id")

		item, status, err := ownedCartItem(db, ident, itemID)
		if err != nil {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var cart models.Cart
		if err := ownerScope(db, ident).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

var (
	errCartItemNotFound = errors.New("Cart item not found")
	errNotCartOwner     = errors.New("Cart item belongs to another cart")
)

// ownedCartItem loads a cart line and verifies it belongs to the calling
// identity. The status return is the HTTP code to send on error.
func ownedCartItem(db *gorm.DB, ident middleware.Identity, itemID string) (models.CartItem, int, error) {
	var item models.CartItem
	if err := db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, http.StatusNotFound, errCartItemNotFound
		}
		return item, http.StatusInternalServerError, errors.New("Failed to fetch cart item")
	}

	var cart models.Cart
	if err := db.First(&cart, "id = ?", item.CartID).Error; err != nil {
		return item, http.StatusInternalServerError, errors.New("Failed to fetch cart")
	}

	owned := false
	if ident.Authenticated() {
		owned = cart.UserID != nil && *cart.UserID == ident.UserID
	} else {
		owned = cart.SessionID != nil && *cart.SessionID == ident.SessionID
	}
	if !owned {
		return item, http.StatusForbidden, errNotCartOwner
	}
	return item, 0, nil
}
