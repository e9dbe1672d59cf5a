package settingsControllers

import (
	"errors"
	"net/http"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingInput struct {
	ValueEn string `json:"valueEn"`
	ValueAr string `json:"valueAr"`
}

// GET /api/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings []models.SiteSetting
		if err := db.Order("key ASC").Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// PUT /api/admin/settings/:key
func UpsertSetting(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		if key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Setting key is required"})
			return
		}

		var input SettingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var setting models.SiteSetting
		err := db.Where("key = ?", key).First(&setting).Error
		switch {
		case err == nil:
			setting.ValueEn = input.ValueEn
			setting.ValueAr = input.ValueAr
			if err := db.Save(&setting).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
				return
			}
			c.JSON(http.StatusOK, setting)
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = models.SiteSetting{Key: key, ValueEn: input.ValueEn, ValueAr: input.ValueAr}
			if err := db.Create(&setting).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create setting"})
				return
			}
			c.JSON(http.StatusCreated, setting)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch setting"})
		}
	}
}
