package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	NameEn          string `gorm:"not null" json:"nameEn"`
	NameAr          string `gorm:"not null" json:"nameAr"`
	Slug            string `gorm:"unique;not null" json:"slug"`
	ImageURL        string `json:"imageUrl"`
	DisplayOrder    int    `gorm:"not null;default:0" json:"displayOrder"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
