package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypeBundle     DiscountType = "bundle"
)

// DiscountCode is a promotional rule. Code is stored uppercase so lookups are
// case-insensitive.
type DiscountCode struct {
	ID             string           `gorm:"primaryKey;size:36" json:"id"`
	Code           string           `gorm:"unique;not null" json:"code"`
	Type           DiscountType     `gorm:"type:varchar(20);not null" json:"type"`
	Value          decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"value"`
	BundleProducts []string         `gorm:"serializer:json" json:"bundleProducts"`
	MinPurchase    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"minPurchase"`
	IsActive       bool             `gorm:"not null;default:true" json:"isActive"`
	ExpiresAt      *time.Time       `json:"expiresAt"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func (d *DiscountCode) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
