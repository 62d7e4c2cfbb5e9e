package request

import "github.com/google/uuid"

// PurchaseOrderItemRequest represents one line of a purchase order request
type PurchaseOrderItemRequest struct {
	MedicineID uuid.UUID `json:"medicine_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
	UnitPrice  float64   `json:"unit_price" binding:"min=0"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	SupplierID           uuid.UUID                  `json:"supplier_id" binding:"required"`
	OrderDate            string                     `json:"order_date" binding:"omitempty,datetime=2006-01-02"`
	ExpectedDeliveryDate string                     `json:"expected_delivery_date" binding:"omitempty,datetime=2006-01-02"`
	Notes                *string                    `json:"notes"`
	Items                []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseOrderFilterRequest represents purchase order filter parameters
type PurchaseOrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	SupplierID string `form:"supplier_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
