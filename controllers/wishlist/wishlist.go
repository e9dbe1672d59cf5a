package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WishlistInput struct {
	ProductID string `json:"productId" binding:"required"`
}

func ownerScope(db *gorm.DB, ident middleware.Identity) *gorm.DB {
	if ident.Authenticated() {
		return db.Where("user_id = ?", ident.UserID)
	}
	return db.Where("session_id = ?", ident.SessionID)
}

// GET /api/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var entries []models.Wishlist
		if err := ownerScope(db.Model(&models.Wishlist{}), ident).
			Preload("Product").
			Order("created_at DESC").
			Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /api/wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var input WishlistInput
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

		// Adding the same product twice just returns the existing entry.
		var existing models.Wishlist
		err := ownerScope(db, ident).Where("product_id = ?", product.ID).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		entry := models.Wishlist{ProductID: product.ID}
		if ident.Authenticated() {
			entry.UserID = &ident.UserID
		} else {
			entry.SessionID = &ident.SessionID
		}
		if err := db.Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /api/wishlist/:id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var entry models.Wishlist
		if err := db.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist entry not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist entry"})
			return
		}

		owned := false
		if ident.Authenticated() {
			owned = entry.UserID != nil && *entry.UserID == ident.UserID
		} else {
			owned = entry.SessionID != nil && *entry.SessionID == ident.SessionID
		}
		if !owned {
			c.JSON(http.StatusForbidden, gin.H{"error": "Wishlist entry belongs to another identity"})
			return
		}

		if err := db.Delete(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove wishlist entry"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist entry removed"})
	}
}
