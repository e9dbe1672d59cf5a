package auth

import (
	"testing"

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

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}

func seedCatalogProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	category := models.Category{NameEn: "T-Shirt", NameAr: "T-Shirt", Slug: "t-shirt"}
	require.NoError(t, db.Create(&category).Error)
	product := models.Product{
		NameEn:        "Training Tee",
		NameAr:        "Training Tee",
		CategoryID:    category.ID,
		Price:         decimal.RequireFromString("50.00"),
		StockQuantity: 10,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestMergeSessionCartSumsMatchingVariants(t *testing.T) {
	db := setupDB(t)
	product := seedCatalogProduct(t, db)

	user := models.User{Username: "customer@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	sid := "guest-session"
	guestCart := models.Cart{SessionID: &sid}
	require.NoError(t, db.Create(&guestCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: guestCart.ID, ProductID: product.ID, Quantity: 2, SelectedSize: "M",
	}).Error)

	userCart := models.Cart{UserID: &user.ID}
	require.NoError(t, db.Create(&userCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: userCart.ID, ProductID: product.ID, Quantity: 1, SelectedSize: "M",
	}).Error)

	require.NoError(t, MergeSessionCartIntoUserCart(db, sid, user.ID))

	var items []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", userCart.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)

	// Guest cart is gone.
	var carts int64
	require.NoError(t, db.Model(&models.Cart{}).Where("session_id = ?", sid).Count(&carts).Error)
	assert.Equal(t, int64(0), carts)
}

func TestMergeSessionCartMovesNewVariants(t *testing.T) {
	db := setupDB(t)
	product := seedCatalogProduct(t, db)

	user := models.User{Username: "customer@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	sid := "guest-session"
	guestCart := models.Cart{SessionID: &sid}
	require.NoError(t, db.Create(&guestCart).Error)
	require.NoError(t, db.Create(&models.CartItem{
		CartID: guestCart.ID, ProductID: product.ID, Quantity: 2, SelectedSize: "L",
	}).Error)

	require.NoError(t, MergeSessionCartIntoUserCart(db, sid, user.ID))

	var userCart models.Cart
	require.NoError(t, db.Preload("Items").Where("user_id = ?", user.ID).First(&userCart).Error)
	require.Len(t, userCart.Items, 1)
	assert.Equal(t, 2, userCart.Items[0].Quantity)
	assert.Equal(t, "L", userCart.Items[0].SelectedSize)
}

func TestMergeSessionCartWithoutGuestCartIsNoop(t *testing.T) {
	db := setupDB(t)

	user := models.User{Username: "customer@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, MergeSessionCartIntoUserCart(db, "no-such-session", user.ID))
}
