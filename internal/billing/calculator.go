package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNoLineItems is returned when invoice totals are requested for an empty
// item list. An invoice must carry at least one line item.
var ErrNoLineItems = fmt.Errorf("invoice must have at least one line item")

// LineItem is a single priced row of an invoice. FreeQuantity is dispensed
// but never charged; MRP is display-only.
type LineItem struct {
	MedicineID         uuid.UUID
	BatchNumber        string
	ExpiryDate         time.Time
	HSNCode            string
	Quantity           int
	FreeQuantity       int
	DiscountPercentage float64
	MRP                float64
	Rate               float64
	GSTPercentage      float64
}

// LineAmount holds the derived monetary amounts of one line item.
type LineAmount struct {
	BaseAmount  float64
	GSTAmount   float64
	TotalAmount float64
}

// Totals holds the aggregate amounts of a whole invoice.
type Totals struct {
	Subtotal   float64
	TotalTax   float64
	GrandTotal float64
}

// ComputeLineAmount derives the monetary amounts of a single line item.
// Discount and GST percentages are expected to be range-validated by the
// caller; quantity, rate and MRP must be non-negative. All arithmetic stays
// unrounded so that summation does not compound rounding error.
func ComputeLineAmount(item LineItem) LineAmount {
	discountedRate := item.Rate * (1 - item.DiscountPercentage/100)
	base := discountedRate * float64(item.Quantity)
	gst := base * item.GSTPercentage / 100
	return LineAmount{
		BaseAmount:  base,
		GSTAmount:   gst,
		TotalAmount: base + gst,
	}
}

// ComputeTotals sums per-line amounts into invoice totals. GrandTotal is
// Subtotal + TotalTax exactly; rounding is left to the presentation layer.
func ComputeTotals(items []LineItem) (Totals, error) {
	if len(items) == 0 {
		return Totals{}, ErrNoLineItems
	}

	var t Totals
	for _, item := range items {
		amount := ComputeLineAmount(item)
		t.Subtotal += amount.BaseAmount
		t.TotalTax += amount.GSTAmount
	}
	t.GrandTotal = t.Subtotal + t.TotalTax
	return t, nil
}

// InvoiceNumber formats an invoice number as "INV" + compact date + a
// zero-padded 3-digit sequence. The sequence is a per-day counter owned by
// the invoice repository, which keeps numbers collision-free under
// concurrent creation.
func InvoiceNumber(now time.Time, seq int) string {
	return fmt.Sprintf("INV%s%03d", now.Format("20060102"), seq)
}

// RoundAmount rounds a currency value to two decimal places, half up. It is
// applied once, when an amount is stored or displayed, never between
// intermediate steps.
func RoundAmount(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatAmount renders a currency value with exactly two decimals for
// display and export.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}
