package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID              string           `gorm:"primaryKey;size:36" json:"id"`
	NameEn          string           `gorm:"not null" json:"nameEn"`
	NameAr          string           `gorm:"not null" json:"nameAr"`
	DescriptionEn   string           `json:"descriptionEn"`
	DescriptionAr   string           `json:"descriptionAr"`
	CategoryID      string           `gorm:"size:36;not null;index" json:"categoryId"`
	Category        Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Price           decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	CompareAtPrice  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"compareAtPrice"`
	Images          []string         `gorm:"serializer:json" json:"images"`
	VideoURL        string           `json:"videoUrl"`
	Colors          []string         `gorm:"serializer:json" json:"colors"`
	Sizes           []string         `gorm:"serializer:json" json:"sizes"`
	StockQuantity   int              `gorm:"not null;default:0" json:"stockQuantity"`
	IsNew           bool             `gorm:"not null;default:false" json:"isNew"`
	IsFeatured      bool             `gorm:"not null;default:false" json:"isFeatured"`
	IsOnSale        bool             `gorm:"not null;default:false" json:"isOnSale"`
	MetaTitle       string           `json:"metaTitle"`
	MetaDescription string           `json:"metaDescription"`
	MetaKeywords    string           `json:"metaKeywords"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
