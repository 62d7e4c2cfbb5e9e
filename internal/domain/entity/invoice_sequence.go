package entity

// InvoiceSequence tracks the per-day invoice counter. Day is the calendar
// date formatted as YYYYMMDD; LastValue only ever increases, so deleting an
// invoice never frees its number for reuse.
type InvoiceSequence struct {
	Day       string `gorm:"size:8;primaryKey"`
	LastValue int    `gorm:"not null;default:0"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}
