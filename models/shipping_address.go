package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingAddress struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UserID     string    `gorm:"size:36;not null;index" json:"userId"`
	FullName   string    `gorm:"not null" json:"fullName"`
	Phone      string    `gorm:"not null" json:"phone"`
	Address    string    `gorm:"not null" json:"address"`
	City       string    `gorm:"not null" json:"city"`
	PostalCode string    `json:"postalCode"`
	IsDefault  bool      `gorm:"not null;default:false" json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (a *ShippingAddress) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
