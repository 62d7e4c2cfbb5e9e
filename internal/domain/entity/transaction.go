package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents one stock movement in the inventory ledger
type Transaction struct {
	ID              uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Type            enum.TransactionType `gorm:"size:20;not null;index" json:"type"`
	MedicineID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"medicine_id"`
	SupplierID      *uuid.UUID           `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Quantity        int                  `gorm:"not null" json:"quantity"`
	UnitPrice       float64              `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TotalPrice      float64              `gorm:"type:decimal(15,2);not null" json:"total_price"`
	ReferenceNumber *string              `gorm:"size:100" json:"reference_number,omitempty"`
	Notes           *string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       string               `gorm:"size:255" json:"created_by"`
	CreatedAt       time.Time            `gorm:"index" json:"created_at"`
	DeletedAt       gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Medicine Medicine  `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
