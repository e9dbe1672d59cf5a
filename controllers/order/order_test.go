package orderControllers

import (
	"testing"

	"github.com/alqablan89-create/activewear-backend/middleware"
	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Username: "customer@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, nameEn, categorySlug, price string, stock int) models.Product {
	t.Helper()

	var category models.Category
	err := db.Where("slug = ?", categorySlug).First(&category).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		category = models.Category{NameEn: categorySlug, NameAr: categorySlug, Slug: categorySlug}
		require.NoError(t, db.Create(&category).Error)
	}

	product := models.Product{
		NameEn:        nameEn,
		NameAr:        nameEn,
		CategoryID:    category.ID,
		Price:         dec(price),
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedCartWithItem(t *testing.T, db *gorm.DB, userID string, product models.Product, quantity int) models.Cart {
	t.Helper()
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		cart = models.Cart{UserID: &userID}
		require.NoError(t, db.Create(&cart).Error)
	}
	require.NoError(t, db.Create(&models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Quantity:  quantity,
	}).Error)
	return cart
}

func baseInput() PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName:    "Test Customer",
		CustomerEmail:   "customer@example.com",
		ShippingAddress: "1 Test Street, Dubai",
		PaymentMethod:   "card",
	}
}

func TestPlaceOrderSnapshotsPrices(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 10)
	seedCartWithItem(t, db, user.ID, product, 2)

	order, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Total.Equal(dec("100.00")), "total %s", order.Total)
	assert.Equal(t, "Training Tee", order.Items[0].ProductName)
	assert.True(t, order.Items[0].Price.Equal(dec("50.00")))

	// Raising the price later must not change what the customer paid.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", dec("99.00")).Error)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	assert.True(t, stored.Total.Equal(dec("100.00")), "total %s", stored.Total)
	assert.True(t, stored.Items[0].Price.Equal(dec("50.00")))
}

func TestPlaceOrderDecrementsStockAndClearsCart(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 5)
	cart := seedCartWithItem(t, db, user.ID, product, 3)

	_, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	require.NoError(t, err)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 2, stored.StockQuantity)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining)
}

func TestPlaceOrderRejectsInsufficientStock(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 2)
	seedCartWithItem(t, db, user.ID, product, 3)

	_, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Rolled back: stock untouched, no order persisted.
	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 2, stored.StockQuantity)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Equal(t, int64(0), orders)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)

	_, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderAppliesDiscountCode(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 10)
	seedCartWithItem(t, db, user.ID, product, 2)

	require.NoError(t, db.Create(&models.DiscountCode{
		Code: "SAVE10", Type: models.DiscountTypePercentage, Value: dec("10"), IsActive: true,
	}).Error)

	input := baseInput()
	input.DiscountCode = "save10"

	order, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, input)
	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.Equal(dec("10.00")), "discount %s", order.DiscountAmount)
	assert.True(t, order.Total.Equal(dec("90.00")), "total %s", order.Total)
	assert.Equal(t, "SAVE10", order.DiscountCode)
}

func TestPlaceOrderAppliesBundleDiscountAutomatically(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	tshirt := seedProduct(t, db, "Training Tee", "t-shirt", "50.00", 10)
	cap := seedProduct(t, db, "Running Cap", "caps", "30.00", 10)
	seedCartWithItem(t, db, user.ID, tshirt, 1)
	seedCartWithItem(t, db, user.ID, cap, 1)

	order, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	require.NoError(t, err)
	assert.True(t, order.DiscountAmount.Equal(dec("8.00")), "discount %s", order.DiscountAmount)
	assert.True(t, order.Total.Equal(dec("72.00")), "total %s", order.Total)
}

func TestPlaceOrderMarksPaymentCompletedWithIntent(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 10)
	seedCartWithItem(t, db, user.ID, product, 1)

	input := baseInput()
	input.PaymentIntentID = "pi_test_123"

	order, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, input)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, order.PaymentStatus)
	assert.Equal(t, "pi_test_123", order.TransactionID)
}

func TestUpdateOrderStatusAppendsOneHistoryRow(t *testing.T) {
	db := setupDB(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "Training Tee", "performance-shirt", "50.00", 10)
	seedCartWithItem(t, db, user.ID, product, 1)

	order, err := PlaceOrder(db, middleware.Identity{UserID: user.ID}, baseInput())
	require.NoError(t, err)

	var history []models.OrderStatusHistory
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&history).Error)
	require.Len(t, history, 1)
	assert.Equal(t, string(models.OrderStatusPending), history[0].Status)

	updated, err := UpdateOrderStatus(db, order.ID, models.OrderStatusShipped, "Status changed to shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&history).Error)
	require.Len(t, history, 2)
	assert.Equal(t, string(models.OrderStatusShipped), history[1].Status)
}
