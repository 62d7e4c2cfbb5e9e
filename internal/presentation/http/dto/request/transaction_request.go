package request

import "github.com/google/uuid"

// CreateTransactionRequest represents a manual stock movement request.
// Quantity may be negative only for adjustments.
type CreateTransactionRequest struct {
	Type            string     `json:"type" binding:"required,oneof=purchase sale return adjustment"`
	MedicineID      uuid.UUID  `json:"medicine_id" binding:"required"`
	SupplierID      *uuid.UUID `json:"supplier_id"`
	Quantity        int        `json:"quantity" binding:"required"`
	UnitPrice       float64    `json:"unit_price" binding:"min=0"`
	ReferenceNumber *string    `json:"reference_number" binding:"omitempty,max=100"`
	Notes           *string    `json:"notes"`
}

// TransactionFilterRequest represents transaction filter parameters
type TransactionFilterRequest struct {
	Type       string `form:"type"`
	MedicineID string `form:"medicine_id"`
	SupplierID string `form:"supplier_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
