package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart belongs to exactly one identity: a registered user or an anonymous
// session. The unique indexes keep find-or-create from ever producing a second
// cart for the same identity.
type Cart struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    *string    `gorm:"size:36;uniqueIndex" json:"userId"`
	SessionID *string    `gorm:"uniqueIndex" json:"sessionId"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one line in a cart. Color and size are stored as "" when the
// product has no such option so the variant uniqueness index applies uniformly.
type CartItem struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	CartID        string    `gorm:"size:36;index;uniqueIndex:idx_cart_variant;not null" json:"cartId"`
	ProductID     string    `gorm:"size:36;uniqueIndex:idx_cart_variant;not null" json:"productId"`
	Product       Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	SelectedColor string    `gorm:"uniqueIndex:idx_cart_variant;not null;default:''" json:"selectedColor"`
	SelectedSize  string    `gorm:"uniqueIndex:idx_cart_variant;not null;default:''" json:"selectedSize"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
