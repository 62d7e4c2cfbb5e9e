package request

// CreateSupplierRequest represents a supplier creation request
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	ContactPerson string  `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Notes         *string `json:"notes"`
}

// UpdateSupplierRequest represents a supplier update request
type UpdateSupplierRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin" binding:"omitempty,max=50"`
	Notes         *string `json:"notes"`
}
