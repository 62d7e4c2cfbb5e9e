package request

import "github.com/google/uuid"

// InvoiceItemRequest represents one line of an invoice creation request
type InvoiceItemRequest struct {
	MedicineID         uuid.UUID `json:"medicine_id" binding:"required"`
	Quantity           int       `json:"quantity" binding:"required,min=1"`
	FreeQuantity       int       `json:"free_quantity" binding:"min=0"`
	DiscountPercentage float64   `json:"discount_percentage" binding:"min=0,max=100"`
	MRP                float64   `json:"mrp" binding:"min=0"`
	Rate               float64   `json:"rate" binding:"min=0"`
	GSTPercentage      float64   `json:"gst_percentage" binding:"min=0,max=100"`
}

// CreateInvoiceRequest represents an invoice creation request
type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name" binding:"required,min=2,max=255"`
	CustomerPhone   *string              `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerAddress *string              `json:"customer_address"`
	CustomerGSTIN   *string              `json:"customer_gstin" binding:"omitempty,max=50"`
	CustomerPAN     *string              `json:"customer_pan" binding:"omitempty,max=50"`
	CustomerDLNo    *string              `json:"customer_dl_number" binding:"omitempty,max=100"`
	PaymentType     string               `json:"payment_type" binding:"omitempty,oneof=cash credit"`
	Notes           *string              `json:"notes"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Search      string `form:"search"`
	PaymentType string `form:"payment_type"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
