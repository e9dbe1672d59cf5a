package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type Order struct {
	ID              string               `gorm:"primaryKey;size:36" json:"id"`
	UserID          string               `gorm:"size:36;not null;index" json:"userId"`
	User            User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	StatusHistory   []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"statusHistory,omitempty"`
	Status          OrderStatus          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Total           decimal.Decimal      `gorm:"type:decimal(10,2);not null" json:"total"`
	DiscountAmount  decimal.Decimal      `gorm:"type:decimal(10,2);not null;default:0" json:"discountAmount"`
	DiscountCode    string               `json:"discountCode"`
	CustomerName    string               `gorm:"not null" json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone"`
	ShippingAddress string               `gorm:"not null" json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	PaymentStatus   PaymentStatus        `gorm:"type:varchar(20);not null;default:'pending'" json:"paymentStatus"`
	TransactionID   string               `json:"transactionId"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// OrderItem captures the product name and price at purchase time. Later edits
// to the product row never change what the customer paid.
type OrderItem struct {
	ID            string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID       string          `gorm:"size:36;not null;index" json:"orderId"`
	ProductID     string          `gorm:"size:36;not null" json:"productId"`
	ProductName   string          `gorm:"not null" json:"productName"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SelectedColor string          `json:"selectedColor"`
	SelectedSize  string          `json:"selectedSize"`
}

type OrderStatusHistory struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string    `gorm:"size:36;not null;index" json:"orderId"`
	Status    string    `gorm:"not null" json:"status"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
