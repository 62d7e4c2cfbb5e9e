package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PharmacySettings holds the seller profile printed on every GST invoice:
// legal name, address, registration numbers and the terms block.
type PharmacySettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StoreName    string    `gorm:"size:255;not null" json:"store_name"`
	AddressLine1 string    `gorm:"size:255" json:"address_line1"`
	AddressLine2 string    `gorm:"size:255" json:"address_line2"`
	Phone        string    `gorm:"size:100" json:"phone"`
	GSTIN        string    `gorm:"size:50;column:gstin" json:"gstin"`
	DLNumbers    string    `gorm:"size:255;column:dl_numbers" json:"dl_numbers"`
	Terms        string    `gorm:"type:text" json:"terms"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating settings
func (s *PharmacySettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PharmacySettings model
func (PharmacySettings) TableName() string {
	return "pharmacy_settings"
}
