package entity

// InvoicePrintHeader is the seller block printed at the top of a GST invoice
type InvoicePrintHeader struct {
	StoreName    string `json:"store_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	Phone        string `json:"phone"`
	GSTIN        string `json:"gstin"`
	DLNumbers    string `json:"dl_numbers"`
}

// InvoicePrintItem is one formatted line of a printed GST invoice
type InvoicePrintItem struct {
	Name               string  `json:"name"`
	Manufacturer       string  `json:"manufacturer"`
	HSNCode            string  `json:"hsn_code"`
	BatchNumber        string  `json:"batch_number"`
	ExpiryDate         string  `json:"expiry_date"`
	Quantity           int     `json:"quantity"`
	FreeQuantity       int     `json:"free_quantity"`
	DiscountPercentage float64 `json:"discount_percentage"`
	MRP                float64 `json:"mrp"`
	Rate               float64 `json:"rate"`
	GSTPercentage      float64 `json:"gst_percentage"`
	Amount             float64 `json:"amount"`
}

// InvoicePrintout is the full print model for a GST invoice
type InvoicePrintout struct {
	Header          InvoicePrintHeader `json:"header"`
	InvoiceNumber   string             `json:"invoice_number"`
	InvoiceDate     string             `json:"invoice_date"`
	CustomerName    string             `json:"customer_name"`
	CustomerAddress string             `json:"customer_address,omitempty"`
	CustomerGSTIN   string             `json:"customer_gstin,omitempty"`
	CustomerDLNo    string             `json:"customer_dl_number,omitempty"`
	PaymentType     string             `json:"payment_type"`
	Items           []InvoicePrintItem `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	TotalTax        float64            `json:"total_tax"`
	GrandTotal      float64            `json:"grand_total"`
	Terms           string             `json:"terms,omitempty"`
}
