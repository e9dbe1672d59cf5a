package cartControllers

import (
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/shopspring/decimal"
)

// Category slugs that trigger the automatic bundle discount when both appear
// in the same cart.
const (
	bundleSlugTShirt = "t-shirt"
	bundleSlugCaps   = "caps"
)

var bundleRate = decimal.NewFromFloat(0.10)

type CartSummary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	BundleDiscount decimal.Decimal `json:"bundleDiscount"`
	Total          decimal.Decimal `json:"total"`
}

// SummarizeCart computes the display totals for a cart: the subtotal over
// live product prices and the automatic 10% t-shirt+caps bundle discount.
// Nothing here is persisted; the discount is re-evaluated at checkout.
func SummarizeCart(items []models.CartItem) CartSummary {
	subtotal := decimal.Zero
	hasTShirt := false
	hasCaps := false

	for _, item := range items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)

		switch item.Product.Category.Slug {
		case bundleSlugTShirt:
			hasTShirt = true
		case bundleSlugCaps:
			hasCaps = true
		}
	}

	discount := decimal.Zero
	if hasTShirt && hasCaps {
		discount = subtotal.Mul(bundleRate).Round(2)
	}

	return CartSummary{
		Subtotal:       subtotal,
		BundleDiscount: discount,
		Total:          subtotal.Sub(discount),
	}
}
