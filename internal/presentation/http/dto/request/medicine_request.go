package request

import "github.com/google/uuid"

// CreateMedicineRequest represents a medicine creation request
type CreateMedicineRequest struct {
	Name             string     `json:"name" binding:"required,min=2,max=255"`
	GenericName      string     `json:"generic_name" binding:"omitempty,max=255"`
	Manufacturer     string     `json:"manufacturer" binding:"omitempty,max=255"`
	CategoryID       *uuid.UUID `json:"category_id"`
	BatchNumber      string     `json:"batch_number" binding:"omitempty,max=100"`
	ExpiryDate       string     `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	HSNCode          string     `json:"hsn_code" binding:"omitempty,max=50"`
	StockQuantity    int        `json:"stock_quantity" binding:"min=0"`
	UnitPrice        float64    `json:"unit_price" binding:"min=0"`
	ReorderLevel     int        `json:"reorder_level" binding:"min=0"`
	StorageCondition string     `json:"storage_condition" binding:"omitempty,max=255"`
	Description      *string    `json:"description"`
}

// UpdateMedicineRequest represents a medicine update request
type UpdateMedicineRequest struct {
	Name             *string    `json:"name" binding:"omitempty,min=2,max=255"`
	GenericName      *string    `json:"generic_name" binding:"omitempty,max=255"`
	Manufacturer     *string    `json:"manufacturer" binding:"omitempty,max=255"`
	CategoryID       *uuid.UUID `json:"category_id"`
	BatchNumber      *string    `json:"batch_number" binding:"omitempty,max=100"`
	ExpiryDate       *string    `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	HSNCode          *string    `json:"hsn_code" binding:"omitempty,max=50"`
	StockQuantity    *int       `json:"stock_quantity" binding:"omitempty,min=0"`
	UnitPrice        *float64   `json:"unit_price" binding:"omitempty,min=0"`
	ReorderLevel     *int       `json:"reorder_level" binding:"omitempty,min=0"`
	StorageCondition *string    `json:"storage_condition" binding:"omitempty,max=255"`
	Description      *string    `json:"description"`
}

// MedicineFilterRequest represents medicine filter parameters
type MedicineFilterRequest struct {
	Search         string `form:"search"`
	CategoryID     string `form:"category_id"`
	LowStock       bool   `form:"low_stock"`
	ExpiringBefore string `form:"expiring_before"`
	SortBy         string `form:"sort_by"`
	SortOrder      string `form:"sort_order"`
	Page           int    `form:"page"`
	PerPage        int    `form:"per_page"`
}

// LookupMedicineRequest represents an AI autofill lookup request
type LookupMedicineRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}
