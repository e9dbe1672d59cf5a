package adminControllers

import (
	"net/http"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GET /api/admin/stats
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalOrders, totalProducts, totalUsers int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		// Revenue only counts orders that were not cancelled.
		var totals []decimal.Decimal
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Pluck("total", &totals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		totalRevenue := decimal.Zero
		for _, t := range totals {
			totalRevenue = totalRevenue.Add(t)
		}

		c.JSON(http.StatusOK, gin.H{
			"totalRevenue":  totalRevenue,
			"totalOrders":   totalOrders,
			"totalProducts": totalProducts,
			"totalUsers":    totalUsers,
		})
	}
}
