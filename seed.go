package main

import (
	"errors"
	"log"

	"github.com/alqablan89-create/activewear-backend/auth"
	"github.com/alqablan89-create/activewear-backend/models"
	"gorm.io/gorm"
)

// seedDatabase creates the default admin account and the base category set.
// Rows that already exist are left untouched, so this is safe on every boot.
func seedDatabase(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedCategories(db)
}

func seedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "admin@liftmeup.com").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := models.User{
		Username: "admin@liftmeup.com",
		Password: hash,
		FullName: "Store Admin",
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("✅ Seeded admin account")
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{NameEn: "Performance Shirt", NameAr: "قميص الأداء", Slug: "performance-shirt", DisplayOrder: 1},
		{NameEn: "Hooded Top", NameAr: "توب بغطاء رأس", Slug: "hooded-top", DisplayOrder: 2},
		{NameEn: "T-Shirt", NameAr: "تي شيرت", Slug: "t-shirt", DisplayOrder: 3},
		{NameEn: "Caps", NameAr: "قبعات", Slug: "caps", DisplayOrder: 4},
		{NameEn: "Fragrance", NameAr: "عطور", Slug: "fragrance", DisplayOrder: 5},
	}

	for _, category := range categories {
		var existing models.Category
		err := db.Where("slug = ?", category.Slug).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
