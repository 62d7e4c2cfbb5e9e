package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Medicine represents a stocked pharmaceutical product
type Medicine struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID       *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name             string         `gorm:"size:255;not null;index" json:"name"`
	GenericName      string         `gorm:"size:255" json:"generic_name"`
	Manufacturer     string         `gorm:"size:255" json:"manufacturer"`
	BatchNumber      string         `gorm:"size:100" json:"batch_number"`
	ExpiryDate       time.Time      `gorm:"type:date" json:"expiry_date"`
	HSNCode          string         `gorm:"size:50;column:hsn_code" json:"hsn_code"`
	StockQuantity    int            `gorm:"default:0" json:"stock_quantity"`
	UnitPrice        float64        `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	ReorderLevel     int            `gorm:"default:0" json:"reorder_level"`
	StorageCondition string         `gorm:"size:100" json:"storage_condition"`
	Description      *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new medicine
func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Medicine model
func (Medicine) TableName() string {
	return "medicines"
}

// IsLowStock reports whether the medicine is at or below its reorder level
func (m *Medicine) IsLowStock() bool {
	return m.StockQuantity <= m.ReorderLevel
}

// Category represents a medicine category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Medicines []Medicine `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
