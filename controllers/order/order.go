package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	cartControllers "github.com/alqablan89-create/activewear-backend/controllers/cart"
	discountControllers "github.com/alqablan89-create/activewear-backend/controllers/discount"
	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceOrderInput struct {
	PaymentIntentID string `json:"paymentIntentId"`
	PaymentMethod   string `json:"paymentMethod"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	DiscountCode    string `json:"discountCode"`
}

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// lockForUpdate adds a row lock on databases that support it. SQLite has no
// SELECT FOR UPDATE and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// PlaceOrder converts the identity's cart into a persisted order. Everything
// runs in one transaction: products are locked and their stock decremented,
// each line is snapshotted into an OrderItem with the price at purchase time,
// the discount is evaluated, the first status-history row is appended and the
// cart is cleared. A failure anywhere rolls the whole sequence back.
func PlaceOrder(db *gorm.DB, ident middleware.Identity, input PlaceOrderInput) (*models.Order, error) {
	cart, err := cartControllers.FindOrCreateCart(db, ident)
	if err != nil {
		return nil, err
	}
	items, err := cartControllers.LoadCartItems(db, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err = db.Transaction(func(tx *gorm.DB) error {
		subtotal := decimal.Zero
		productIDs := make([]string, 0, len(items))
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			var product models.Product
			if err := lockForUpdate(tx).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.StockQuantity < item.Quantity {
				return ErrInsufficientStock
			}
			product.StockQuantity -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			line := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			subtotal = subtotal.Add(line)
			productIDs = append(productIDs, product.ID)

			orderItems = append(orderItems, models.OrderItem{
				ProductID:     product.ID,
				ProductName:   product.NameEn,
				Quantity:      item.Quantity,
				Price:         product.Price,
				SelectedColor: item.SelectedColor,
				SelectedSize:  item.SelectedSize,
			})
		}

		discountAmount := decimal.Zero
		discountCode := ""
		if code := strings.TrimSpace(input.DiscountCode); code != "" {
			amount, dc, err := discountControllers.Evaluate(tx, code, subtotal, productIDs)
			if err != nil {
				return err
			}
			discountAmount = amount
			discountCode = dc.Code
		} else {
			summary := cartControllers.SummarizeCart(items)
			discountAmount = summary.BundleDiscount
		}

		paymentStatus := models.PaymentStatusPending
		if input.PaymentIntentID != "" {
			paymentStatus = models.PaymentStatusCompleted
		}

		order = models.Order{
			UserID:          ident.UserID,
			Items:           orderItems,
			Status:          models.OrderStatusPending,
			Total:           subtotal.Sub(discountAmount),
			DiscountAmount:  discountAmount,
			DiscountCode:    discountCode,
			CustomerName:    input.CustomerName,
			CustomerEmail:   input.CustomerEmail,
			CustomerPhone:   input.CustomerPhone,
			ShippingAddress: input.ShippingAddress,
			PaymentMethod:   input.PaymentMethod,
			PaymentStatus:   paymentStatus,
			TransactionID:   input.PaymentIntentID,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID: order.ID,
			Status:  string(models.OrderStatusPending),
			Note:    "Order placed",
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)
		if !ident.Authenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, ident, input)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInsufficientStock),
				errors.Is(err, discountControllers.ErrCodeNotFound),
				errors.Is(err, discountControllers.ErrCodeInactive),
				errors.Is(err, discountControllers.ErrCodeExpired),
				errors.Is(err, discountControllers.ErrMinPurchase),
				errors.Is(err, discountControllers.ErrBundleIncomplete):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := middleware.CurrentIdentity(c)

		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", ident.UserID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
