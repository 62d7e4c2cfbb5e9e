package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PurchaseOrder represents an order placed with a supplier
type PurchaseOrder struct {
	ID                   uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID           uuid.UUID                `gorm:"type:uuid;not null;index" json:"supplier_id"`
	ReferenceNumber      string                   `gorm:"size:100;unique;not null" json:"reference_number"`
	OrderDate            time.Time                `gorm:"type:date;not null" json:"order_date"`
	ExpectedDeliveryDate time.Time                `gorm:"type:date" json:"expected_delivery_date"`
	Status               enum.PurchaseOrderStatus `gorm:"size:20;default:'pending'" json:"status"`
	TotalAmount          float64                  `gorm:"type:decimal(15,2);default:0" json:"total_amount"`
	Notes                *string                  `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
	DeletedAt            gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Supplier *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem represents a line item of a purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	MedicineID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	UnitPrice       float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	Total           float64        `gorm:"type:decimal(15,2);not null" json:"total"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	Medicine      Medicine      `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (pi *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == uuid.Nil {
		pi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
