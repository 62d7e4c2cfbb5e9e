package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice represents a GST sales invoice header. The invoice number is
// assigned once at creation and never changes; monetary totals are stored
// rounded to two decimals.
type Invoice struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber   string           `gorm:"size:100;unique;not null" json:"invoice_number"`
	InvoiceDate     time.Time        `gorm:"not null;index" json:"invoice_date"`
	CustomerName    string           `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone   *string          `gorm:"size:50" json:"customer_phone,omitempty"`
	CustomerAddress *string          `gorm:"type:text" json:"customer_address,omitempty"`
	CustomerGSTIN   *string          `gorm:"size:50;column:customer_gstin" json:"customer_gstin,omitempty"`
	CustomerPAN     *string          `gorm:"size:50;column:customer_pan" json:"customer_pan,omitempty"`
	CustomerDLNo    *string          `gorm:"size:100;column:customer_dl_number" json:"customer_dl_number,omitempty"`
	TotalAmount     float64          `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	TotalTax        float64          `gorm:"type:decimal(15,2);not null" json:"total_tax"`
	GrandTotal      float64          `gorm:"type:decimal(15,2);not null" json:"grand_total"`
	PaymentType     enum.PaymentType `gorm:"size:20;default:'cash'" json:"payment_type"`
	Notes           *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       string           `gorm:"size:255" json:"created_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Items []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents one priced line of an invoice. FreeQuantity is
// dispensed but not charged; MRP is carried for display only.
type InvoiceItem struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	MedicineID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"medicine_id"`
	BatchNumber        string         `gorm:"size:100" json:"batch_number"`
	ExpiryDate         time.Time      `gorm:"type:date" json:"expiry_date"`
	HSNCode            string         `gorm:"size:50;column:hsn_code" json:"hsn_code"`
	Quantity           int            `gorm:"not null" json:"quantity"`
	FreeQuantity       int            `gorm:"default:0" json:"free_quantity"`
	DiscountPercentage float64        `gorm:"type:decimal(5,2);default:0" json:"discount_percentage"`
	MRP                float64        `gorm:"type:decimal(15,2);column:mrp" json:"mrp"`
	Rate               float64        `gorm:"type:decimal(15,2)" json:"rate"`
	GSTPercentage      float64        `gorm:"type:decimal(5,2);column:gst_percentage" json:"gst_percentage"`
	GSTAmount          float64        `gorm:"type:decimal(15,2);column:gst_amount" json:"gst_amount"`
	TotalAmount        float64        `gorm:"type:decimal(15,2)" json:"total_amount"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice  Invoice  `gorm:"foreignKey:InvoiceID" json:"-"`
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (ii *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if ii.ID == uuid.Nil {
		ii.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
