package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// POST /api/admin/products/import-excel
//
// Rows carry the same columns the export writes. A row with an existing
// product ID updates that product; a row without one creates a new product
// under the category named by its slug.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			nameEn := get(1)
			nameAr := get(2)
			descEn := get(3)
			descAr := get(4)
			categorySlug := get(5)
			price, priceErr := decimal.NewFromString(get(6))
			stock, _ := strconv.Atoi(get(8))

			if nameEn == "" || priceErr != nil {
				skippedCount++
				continue
			}

			var category models.Category
			if err := db.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
				skippedCount++
				continue
			}

			var compareAt *decimal.Decimal
			if v, err := decimal.NewFromString(get(7)); err == nil {
				compareAt = &v
			}

			product := models.Product{
				NameEn:         nameEn,
				NameAr:         nameAr,
				DescriptionEn:  descEn,
				DescriptionAr:  descAr,
				CategoryID:     category.ID,
				Price:          price,
				CompareAtPrice: compareAt,
				StockQuantity:  stock,
				Colors:         splitList(get(9)),
				Sizes:          splitList(get(10)),
				IsNew:          get(11) == "true",
				IsFeatured:     get(12) == "true",
				IsOnSale:       get(13) == "true",
			}

			if id != "" {
				var existing models.Product
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					product.ID = existing.ID
					product.Images = existing.Images
					product.CreatedAt = existing.CreatedAt
					if err := db.Save(&product).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
