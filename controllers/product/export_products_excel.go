package productControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("created_at ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "NameEn", "NameAr", "DescriptionEn", "DescriptionAr",
			"CategorySlug", "Price", "CompareAtPrice", "Stock",
			"Colors", "Sizes", "IsNew", "IsFeatured", "IsOnSale", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.NameEn)
			row.AddCell().SetValue(p.NameAr)
			row.AddCell().SetValue(p.DescriptionEn)
			row.AddCell().SetValue(p.DescriptionAr)
			row.AddCell().SetValue(p.Category.Slug)
			row.AddCell().SetValue(p.Price.String())
			if p.CompareAtPrice != nil {
				row.AddCell().SetValue(p.CompareAtPrice.String())
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(strings.Join(p.Colors, ","))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(strconv.FormatBool(p.IsNew))
			row.AddCell().SetValue(strconv.FormatBool(p.IsFeatured))
			row.AddCell().SetValue(strconv.FormatBool(p.IsOnSale))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
