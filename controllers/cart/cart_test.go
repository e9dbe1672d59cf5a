package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alqablan89-create/activewear-backend/middleware"
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

func testRouter(db *gorm.DB, ident middleware.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetIdentity(c, ident)
		c.Next()
	})
	r.GET("/api/cart", GetCart(db))
	r.POST("/api/cart", AddCartItem(db))
	r.PUT("/api/cart/:id", UpdateCartItem(db))
	r.DELETE("/api/cart/:id", RemoveCartItem(db))
	r.DELETE("/api/cart", ClearCart(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, nameEn, categorySlug, price string) models.Product {
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
		Price:         decimal.RequireFromString(price),
		StockQuantity: 100,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCartCreatesSingleCartPerIdentity(t *testing.T) {
	db := setupDB(t)
	sid := "guest-session"
	r := testRouter(db, middleware.Identity{SessionID: sid})

	w1 := doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w1.Code)
	w2 := doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w2.Code)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal(w1.Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &second))
	assert.Equal(t, first["id"], second["id"])

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddCartItemSumsSameVariant(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")
	r := testRouter(db, middleware.Identity{SessionID: "guest-session"})

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{
		"productId": product.ID, "quantity": 1, "selectedColor": "black", "selectedSize": "M",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{
		"productId": product.ID, "quantity": 2, "selectedColor": "black", "selectedSize": "M",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddCartItemDifferentVariantMakesNewLine(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")
	r := testRouter(db, middleware.Identity{SessionID: "guest-session"})

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{
		"productId": product.ID, "quantity": 1, "selectedSize": "M",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{
		"productId": product.ID, "quantity": 1, "selectedSize": "L",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddCartItemRejectsBadInput(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")
	r := testRouter(db, middleware.Identity{SessionID: "guest-session"})

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{"productId": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{"productId": product.ID, "quantity": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{"productId": "no-such-product", "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartItemOwnership(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")

	owner := testRouter(db, middleware.Identity{SessionID: "owner-session"})
	w := doJSON(owner, http.MethodPost, "/api/cart", gin.H{"productId": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	stranger := testRouter(db, middleware.Identity{SessionID: "other-session"})
	w = doJSON(stranger, http.MethodPut, "/api/cart/"+item.ID, gin.H{"quantity": 5})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(stranger, http.MethodDelete, "/api/cart/"+item.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(owner, http.MethodDelete, "/api/cart/missing-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartWithoutCartIsNoop(t *testing.T) {
	db := setupDB(t)
	r := testRouter(db, middleware.Identity{SessionID: "guest-session"})

	w := doJSON(r, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSummarizeCartAppliesBundleDiscount(t *testing.T) {
	db := setupDB(t)
	tshirt := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")
	cap := seedProduct(t, db, "Running Cap", "caps", "30.00")
	r := testRouter(db, middleware.Identity{SessionID: "guest-session"})

	w := doJSON(r, http.MethodPost, "/api/cart", gin.H{"productId": tshirt.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(r, http.MethodPost, "/api/cart", gin.H{"productId": cap.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Discount decimal.Decimal `json:"bundleDiscount"`
		Total    decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Subtotal.Equal(decimal.RequireFromString("80.00")), "subtotal %s", body.Subtotal)
	assert.True(t, body.Discount.Equal(decimal.RequireFromString("8.00")), "discount %s", body.Discount)
	assert.True(t, body.Total.Equal(decimal.RequireFromString("72.00")), "total %s", body.Total)
}

func TestSummarizeCartNoBundleWithoutBothCategories(t *testing.T) {
	db := setupDB(t)
	tshirt := seedProduct(t, db, "Training Tee", "t-shirt", "50.00")

	cart := models.Cart{SessionID: ptr("guest-session")}
	require.NoError(t, db.Create(&cart).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: tshirt.ID, Quantity: 2}).Error)

	items, err := LoadCartItems(db, cart.ID)
	require.NoError(t, err)

	summary := SummarizeCart(items)
	assert.True(t, summary.BundleDiscount.IsZero())
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("100.00")))
}

func ptr(s string) *string { return &s }
