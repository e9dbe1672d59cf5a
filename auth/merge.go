package auth

import (
	"errors"
	"time"

	"github.com/alqablan89-create/activewear-backend/models"
	"gorm.io/gorm"
)

// MergeSessionCartIntoUserCart folds the anonymous-session cart into the
// user's cart when a visitor logs in or registers. Lines with the same
// (product, color, size) have their quantities summed; the session cart is
// deleted afterwards. A missing session cart is not an error.
func MergeSessionCartIntoUserCart(db *gorm.DB, sessionID, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var guestCart models.Cart
		if err := tx.Preload("Items").Where("session_id = ?", sessionID).First(&guestCart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		var userCart models.Cart
		err := tx.Where("user_id = ?", userID).First(&userCart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			userCart = models.Cart{UserID: &userID}
			if err := tx.Create(&userCart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		for _, guestItem := range guestCart.Items {
			var userItem models.CartItem
			lookupErr := tx.Where(
				"cart_id = ? AND product_id = ? AND selected_color = ? AND selected_size = ?",
				userCart.ID, guestItem.ProductID, guestItem.SelectedColor, guestItem.SelectedSize,
			).First(&userItem).Error

			switch {
			case lookupErr == nil:
				userItem.Quantity += guestItem.Quantity
				userItem.CreatedAt = time.Now()
				if err := tx.Save(&userItem).Error; err != nil {
					return err
				}
			case errors.Is(lookupErr, gorm.ErrRecordNotFound):
				moved := models.CartItem{
					CartID:        userCart.ID,
					ProductID:     guestItem.ProductID,
					Quantity:      guestItem.Quantity,
					SelectedColor: guestItem.SelectedColor,
					SelectedSize:  guestItem.SelectedSize,
				}
				if err := tx.Create(&moved).Error; err != nil {
					return err
				}
			default:
				return lookupErr
			}
		}

		if err := tx.Where("cart_id = ?", guestCart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&guestCart).Error
	})
}
