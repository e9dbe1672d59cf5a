package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSetting is one bilingual key/value pair used by the content pages
// (about, terms, contact details and similar).
type SiteSetting struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Key       string    `gorm:"unique;not null" json:"key"`
	ValueEn   string    `json:"valueEn"`
	ValueAr   string    `json:"valueAr"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SiteSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
