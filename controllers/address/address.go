package addressControllers

import (
	"errors"
	"net/http"

	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressInput struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

// GET /api/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var addresses []models.ShippingAddress
		if err := db.Where("user_id = ?", ident.UserID).
			Order("created_at DESC").
			Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.ShippingAddress{
			UserID:     ident.UserID,
			FullName:   input.FullName,
			Phone:      input.Phone,
			Address:    input.Address,
			City:       input.City,
			PostalCode: input.PostalCode,
			IsDefault:  input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.ShippingAddress{}).
					Where("user_id = ?", ident.UserID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// PUT /api/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var address models.ShippingAddress
		if err := db.First(&address, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			return
		}
		if address.UserID != ident.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Address belongs to another user"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address.FullName = input.FullName
		address.Phone = input.Phone
		address.Address = input.Address
		address.City = input.City
		address.PostalCode = input.PostalCode
		address.IsDefault = input.IsDefault

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.ShippingAddress{}).
					Where("user_id = ? AND id <> ?", ident.UserID, address.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Save(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

// DELETE /api/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), ident.UserID).
			Delete(&models.ShippingAddress{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}
