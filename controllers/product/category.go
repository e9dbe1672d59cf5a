package productControllers

import (
	"errors"
	"net/http"

	storageControllers "github.com/alqablan89-create/activewear-backend/controllers/storage"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryInput struct {
	NameEn          string `json:"nameEn" binding:"required"`
	NameAr          string `json:"nameAr" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	ImageURL        string `json:"imageUrl"`
	DisplayOrder    int    `json:"displayOrder"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
}

// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("display_order ASC").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing models.Category
		if err := db.Where("slug = ?", input.Slug).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
			return
		}

		category := models.Category{
			NameEn:          input.NameEn,
			NameAr:          input.NameAr,
			Slug:            input.Slug,
			ImageURL:        storageControllers.NormalizeObjectPath(input.ImageURL),
			DisplayOrder:    input.DisplayOrder,
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			MetaKeywords:    input.MetaKeywords,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /api/admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Slug != category.Slug {
			var clash models.Category
			if err := db.Where("slug = ? AND id <> ?", input.Slug, category.ID).First(&clash).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category slug already exists"})
				return
			}
		}

		category.NameEn = input.NameEn
		category.NameAr = input.NameAr
		category.Slug = input.Slug
		category.ImageURL = storageControllers.NormalizeObjectPath(input.ImageURL)
		category.DisplayOrder = input.DisplayOrder
		category.MetaTitle = input.MetaTitle
		category.MetaDescription = input.MetaDescription
		category.MetaKeywords = input.MetaKeywords

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Category{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
