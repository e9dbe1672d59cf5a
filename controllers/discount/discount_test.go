package discountControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alqablan89-create/activewear-backend/models"
	"github.com/gin-gonic/gin"
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

func seedCode(t *testing.T, db *gorm.DB, dc models.DiscountCode) models.DiscountCode {
	t.Helper()
	require.NoError(t, db.Create(&dc).Error)
	return dc
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEvaluatePercentage(t *testing.T) {
	db := setupDB(t)
	seedCode(t, db, models.DiscountCode{
		Code: "SAVE15", Type: models.DiscountTypePercentage, Value: dec("15"), IsActive: true,
	})

	amount, dc, err := Evaluate(db, "save15", dec("99.99"), nil)
	require.NoError(t, err)
	assert.Equal(t, "SAVE15", dc.Code)
	assert.True(t, amount.Equal(dec("15.00")), "amount %s", amount)
}

func TestEvaluateFixedClampsToSubtotal(t *testing.T) {
	db := setupDB(t)
	seedCode(t, db, models.DiscountCode{
		Code: "TENOFF", Type: models.DiscountTypeFixed, Value: dec("10"), IsActive: true,
	})

	amount, _, err := Evaluate(db, "TENOFF", dec("6.50"), nil)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("6.50")), "amount %s", amount)

	amount, _, err = Evaluate(db, "TENOFF", dec("50.00"), nil)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("10")), "amount %s", amount)
}

func TestEvaluateRejectsInactiveAndExpired(t *testing.T) {
	db := setupDB(t)
	seedCode(t, db, models.DiscountCode{
		Code: "DISABLED", Type: models.DiscountTypeFixed, Value: dec("5"), IsActive: false,
	})
	past := time.Now().Add(-time.Hour)
	seedCode(t, db, models.DiscountCode{
		Code: "EXPIRED", Type: models.DiscountTypeFixed, Value: dec("5"), IsActive: true, ExpiresAt: &past,
	})

	_, _, err := Evaluate(db, "DISABLED", dec("100"), nil)
	assert.ErrorIs(t, err, ErrCodeInactive)

	_, _, err = Evaluate(db, "EXPIRED", dec("100"), nil)
	assert.ErrorIs(t, err, ErrCodeExpired)

	_, _, err = Evaluate(db, "MISSING", dec("100"), nil)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestEvaluateMinPurchase(t *testing.T) {
	db := setupDB(t)
	min := dec("100")
	seedCode(t, db, models.DiscountCode{
		Code: "BIGSPEND", Type: models.DiscountTypePercentage, Value: dec("20"),
		IsActive: true, MinPurchase: &min,
	})

	_, _, err := Evaluate(db, "BIGSPEND", dec("99.99"), nil)
	assert.ErrorIs(t, err, ErrMinPurchase)

	amount, _, err := Evaluate(db, "BIGSPEND", dec("100"), nil)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("20.00")))
}

func TestEvaluateBundleRequiresAllProducts(t *testing.T) {
	db := setupDB(t)
	seedCode(t, db, models.DiscountCode{
		Code: "COMBO", Type: models.DiscountTypeBundle, Value: dec("10"),
		BundleProducts: []string{"prod-a", "prod-b"}, IsActive: true,
	})

	_, _, err := Evaluate(db, "COMBO", dec("80"), []string{"prod-a"})
	assert.ErrorIs(t, err, ErrBundleIncomplete)

	amount, _, err := Evaluate(db, "COMBO", dec("80"), []string{"prod-a", "prod-b", "prod-c"})
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("8.00")), "amount %s", amount)
}

func TestCreateDiscountRejectsDuplicateCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	seedCode(t, db, models.DiscountCode{
		Code: "SUMMER", Type: models.DiscountTypeFixed, Value: dec("5"), IsActive: true,
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/discounts", CreateDiscount(db))

	body, _ := json.Marshal(gin.H{"code": "summer", "type": "fixed", "value": "5"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/discounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDiscountStoresUppercase(t *testing.T) {
	db := setupDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/discounts", CreateDiscount(db))

	body, _ := json.Marshal(gin.H{"code": "welcome10", "type": "percentage", "value": "10"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/discounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var dc models.DiscountCode
	require.NoError(t, db.First(&dc).Error)
	assert.Equal(t, "WELCOME10", dc.Code)
	assert.True(t, dc.IsActive)
}
