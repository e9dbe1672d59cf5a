package productControllers

import (
	"errors"
	"net/http"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != product.CategoryID {
			var category models.Category
			if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		product.NameEn = input.NameEn
		product.NameAr = input.NameAr
		product.DescriptionEn = input.DescriptionEn
		product.DescriptionAr = input.DescriptionAr
		product.CategoryID = input.CategoryID
		product.Price = input.Price
		product.CompareAtPrice = input.CompareAtPrice
		product.Images = normalizeImages(input.Images)
		product.VideoURL = input.VideoURL
		product.Colors = input.Colors
		product.Sizes = input.Sizes
		product.StockQuantity = input.StockQuantity
		product.IsNew = input.IsNew
		product.IsFeatured = input.IsFeatured
		product.IsOnSale = input.IsOnSale
		product.MetaTitle = input.MetaTitle
		product.MetaDescription = input.MetaDescription
		product.MetaKeywords = input.MetaKeywords

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
