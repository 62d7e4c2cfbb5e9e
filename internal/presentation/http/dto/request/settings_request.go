package request

// UpdateSettingsRequest represents a pharmacy settings update request
type UpdateSettingsRequest struct {
	StoreName    string `json:"store_name" binding:"required,min=2,max=255"`
	AddressLine1 string `json:"address_line1" binding:"omitempty,max=255"`
	AddressLine2 string `json:"address_line2" binding:"omitempty,max=255"`
	Phone        string `json:"phone" binding:"omitempty,max=100"`
	GSTIN        string `json:"gstin" binding:"omitempty,max=50"`
	DLNumbers    string `json:"dl_numbers" binding:"omitempty,max=255"`
	Terms        string `json:"terms"`
}
