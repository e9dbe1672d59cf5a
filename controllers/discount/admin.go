package discountControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountInput struct {
	Code           string           `json:"code" binding:"required"`
	Type           string           `json:"type" binding:"required,oneof=percentage fixed bundle"`
	Value          decimal.Decimal  `json:"value" binding:"required"`
	BundleProducts []string         `json:"bundleProducts"`
	MinPurchase    *decimal.Decimal `json:"minPurchase"`
	IsActive       *bool            `json:"isActive"`
	ExpiresAt      *time.Time       `json:"expiresAt"`
}

// GET /api/admin/discounts
func ListDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var codes []models.DiscountCode
		if err := db.Order("created_at DESC").Find(&codes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discount codes"})
			return
		}
		c.JSON(http.StatusOK, codes)
	}
}

// POST /api/admin/discounts
func CreateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code := strings.ToUpper(strings.TrimSpace(input.Code))

		var existing models.DiscountCode
		err := db.Where("code = ?", code).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code already exists"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check discount code"})
			return
		}

		dc := models.DiscountCode{
			Code:           code,
			Type:           models.DiscountType(input.Type),
			Value:          input.Value,
			BundleProducts: input.BundleProducts,
			MinPurchase:    input.MinPurchase,
			IsActive:       true,
			ExpiresAt:      input.ExpiresAt,
		}
		if input.IsActive != nil {
			dc.IsActive = *input.IsActive
		}

		if err := db.Create(&dc).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discount code"})
			return
		}
		c.JSON(http.StatusCreated, dc)
	}
}

// PUT /api/admin/discounts/:id
func UpdateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dc models.DiscountCode
		if err := db.First(&dc, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Discount code not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discount code"})
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		code := strings.ToUpper(strings.TrimSpace(input.Code))
		if code != dc.Code {
			var clash models.DiscountCode
			if err := db.Where("code = ? AND id <> ?", code, dc.ID).First(&clash).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Discount code already exists"})
				return
			}
		}

		dc.Code = code
		dc.Type = models.DiscountType(input.Type)
		dc.Value = input.Value
		dc.BundleProducts = input.BundleProducts
		dc.MinPurchase = input.MinPurchase
		dc.ExpiresAt = input.ExpiresAt
		if input.IsActive != nil {
			dc.IsActive = *input.IsActive
		}

		if err := db.Save(&dc).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount code"})
			return
		}
		c.JSON(http.StatusOK, dc)
	}
}

// DELETE /api/admin/discounts/:id
func DeleteDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.DiscountCode{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discount code"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount code not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount code deleted"})
	}
}
