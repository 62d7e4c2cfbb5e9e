package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praveenkm/medistock-api/internal/domain/entity"
)

func TestFormatInvoicePrintout(t *testing.T) {
	printout := &entity.InvoicePrintout{
		Header: entity.InvoicePrintHeader{
			StoreName:    "MediStock Pharmacy",
			AddressLine1: "12 MG Road",
			Phone:        "+91 98765 43210",
			GSTIN:        "29ABCDE1234F1Z5",
			DLNumbers:    "KA-B12345, KA-B12346",
		},
		InvoiceNumber: "INV20260830001",
		InvoiceDate:   "30-08-2026 14:05",
		CustomerName:  "Ravi Kumar",
		PaymentType:   "cash",
		Items: []entity.InvoicePrintItem{
			{
				Name:               "Paracetamol 500mg",
				HSNCode:            "3004",
				BatchNumber:        "B123",
				ExpiryDate:         "06/27",
				Quantity:           10,
				FreeQuantity:       1,
				DiscountPercentage: 5,
				MRP:                100,
				Rate:               90,
				GSTPercentage:      18,
				Amount:             1008.90,
			},
		},
		TotalAmount: 855.00,
		TotalTax:    153.90,
		GrandTotal:  1008.90,
		Terms:       "Goods once sold will not be taken back.",
	}

	out := string(FormatInvoicePrintout(printout))

	assert.Contains(t, out, "MediStock Pharmacy")
	assert.Contains(t, out, "GSTIN: 29ABCDE1234F1Z5")
	assert.Contains(t, out, "DL No: KA-B12345, KA-B12346")
	assert.Contains(t, out, "GST INVOICE")
	assert.Contains(t, out, "INV20260830001")
	assert.Contains(t, out, "Ravi Kumar")
	// Long names are truncated to the 16-char product column
	assert.Contains(t, out, "Paracetamol 500m")
	assert.Contains(t, out, "HSN 3004 GST 18.0% Free 1 Dis 5.0% MRP 100.00")
	assert.Contains(t, out, "1008.90")
	assert.Contains(t, out, "Goods once sold will not be taken back.")
	assert.Contains(t, out, "Thank you, get well soon!")
}

func TestFormatInvoicePrintoutOmitsEmptySections(t *testing.T) {
	printout := &entity.InvoicePrintout{
		Header:        entity.InvoicePrintHeader{StoreName: "MediStock Pharmacy"},
		InvoiceNumber: "INV20260830002",
		CustomerName:  "Walk-in",
	}

	out := string(FormatInvoicePrintout(printout))

	assert.NotContains(t, out, "DL No:")
	assert.NotContains(t, out, "GSTIN:")
	assert.NotContains(t, out, "Terms & Conditions:")
}
