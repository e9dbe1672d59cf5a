package productControllers

import (
	"net/http"

	storageControllers "github.com/alqablan89-create/activewear-backend/controllers/storage"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	NameEn          string           `json:"nameEn" binding:"required"`
	NameAr          string           `json:"nameAr" binding:"required"`
	DescriptionEn   string           `json:"descriptionEn"`
	DescriptionAr   string           `json:"descriptionAr"`
	CategoryID      string           `json:"categoryId" binding:"required"`
	Price           decimal.Decimal  `json:"price" binding:"required"`
	CompareAtPrice  *decimal.Decimal `json:"compareAtPrice"`
	Images          []string         `json:"images"`
	VideoURL        string           `json:"videoUrl"`
	Colors          []string         `json:"colors"`
	Sizes           []string         `json:"sizes"`
	StockQuantity   int              `json:"stockQuantity"`
	IsNew           bool             `json:"isNew"`
	IsFeatured      bool             `json:"isFeatured"`
	IsOnSale        bool             `json:"isOnSale"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	MetaKeywords    string           `json:"metaKeywords"`
}

func normalizeImages(images []string) []string {
	normalized := make([]string, 0, len(images))
	for _, img := range images {
		normalized = append(normalized, storageControllers.NormalizeObjectPath(img))
	}
	return normalized
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		product := models.Product{
			NameEn:          input.NameEn,
			NameAr:          input.NameAr,
			DescriptionEn:   input.DescriptionEn,
			DescriptionAr:   input.DescriptionAr,
			CategoryID:      input.CategoryID,
			Price:           input.Price,
			CompareAtPrice:  input.CompareAtPrice,
			Images:          normalizeImages(input.Images),
			VideoURL:        input.VideoURL,
			Colors:          input.Colors,
			Sizes:           input.Sizes,
			StockQuantity:   input.StockQuantity,
			IsNew:           input.IsNew,
			IsFeatured:      input.IsFeatured,
			IsOnSale:        input.IsOnSale,
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			MetaKeywords:    input.MetaKeywords,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
