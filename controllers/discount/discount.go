package discountControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	cartControllers "github.com/alqablan89-create/activewear-backend/controllers/cart"
	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCodeNotFound     = errors.New("discount code not found")
	ErrCodeInactive     = errors.New("discount code is not active")
	ErrCodeExpired      = errors.New("discount code has expired")
	ErrMinPurchase      = errors.New("cart subtotal is below the minimum purchase")
	ErrBundleIncomplete = errors.New("cart is missing products required by this bundle")
)

// Evaluate resolves a code against the current cart contents and returns the
// discount amount it grants. Fixed discounts are clamped to the subtotal so a
// total can never go negative.
func Evaluate(db *gorm.DB, code string, subtotal decimal.Decimal, productIDs []string) (decimal.Decimal, *models.DiscountCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var dc models.DiscountCode
	if err := db.Where("code = ?", normalized).First(&dc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil, ErrCodeNotFound
		}
		return decimal.Zero, nil, err
	}

	if !dc.IsActive {
		return decimal.Zero, nil, ErrCodeInactive
	}
	if dc.ExpiresAt != nil && dc.ExpiresAt.Before(time.Now()) {
		return decimal.Zero, nil, ErrCodeExpired
	}
	if dc.MinPurchase != nil && subtotal.LessThan(*dc.MinPurchase) {
		return decimal.Zero, nil, ErrMinPurchase
	}

	switch dc.Type {
	case models.DiscountTypePercentage:
		return subtotal.Mul(dc.Value).Div(decimal.NewFromInt(100)).Round(2), &dc, nil
	case models.DiscountTypeBundle:
		inCart := make(map[string]bool, len(productIDs))
		for _, id := range productIDs {
			inCart[id] = true
		}
		for _, required := range dc.BundleProducts {
			if !inCart[required] {
				return decimal.Zero, nil, ErrBundleIncomplete
			}
		}
		return subtotal.Mul(dc.Value).Div(decimal.NewFromInt(100)).Round(2), &dc, nil
	default: // fixed
		amount := dc.Value
		if amount.GreaterThan(subtotal) {
			amount = subtotal
		}
		return amount, &dc, nil
	}
}

type ValidateInput struct {
	Code string `json:"code" binding:"required"`
}

// POST /api/discounts/validate
func ValidateCode(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ValidateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ident := middleware.CurrentIdentity(c)
		cart, err := cartControllers.FindOrCreateCart(db, ident)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		items, err := cartControllers.LoadCartItems(db, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart items"})
			return
		}

		summary := cartControllers.SummarizeCart(items)
		productIDs := make([]string, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		amount, dc, err := Evaluate(db, input.Code, summary.Subtotal, productIDs)
		if err != nil {
			switch {
			case errors.Is(err, ErrCodeNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, ErrCodeInactive), errors.Is(err, ErrCodeExpired),
				errors.Is(err, ErrMinPurchase), errors.Is(err, ErrBundleIncomplete):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate code"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":          true,
			"code":           dc.Code,
			"type":           dc.Type,
			"discountAmount": amount,
		})
	}
}
