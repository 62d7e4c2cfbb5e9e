package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineAmount(t *testing.T) {
	// qty=10, free=1, discount=5%, rate=90, gst=18%
	item := LineItem{
		Quantity:           10,
		FreeQuantity:       1,
		DiscountPercentage: 5,
		Rate:               90,
		GSTPercentage:      18,
	}

	amount := ComputeLineAmount(item)

	assert.InDelta(t, 855.0, amount.BaseAmount, 1e-9)
	assert.InDelta(t, 153.9, amount.GSTAmount, 1e-9)
	assert.InDelta(t, 1008.9, amount.TotalAmount, 1e-9)
}

func TestComputeLineAmountFreeQuantityNeutral(t *testing.T) {
	item := LineItem{
		Quantity:           7,
		DiscountPercentage: 12.5,
		Rate:               33.4,
		GSTPercentage:      12,
	}

	base := ComputeLineAmount(item)
	for _, free := range []int{0, 1, 50, 999} {
		item.FreeQuantity = free
		got := ComputeLineAmount(item)
		assert.Equal(t, base, got, "free quantity must never change amounts")
	}
}

func TestComputeLineAmountDiscountMonotonic(t *testing.T) {
	item := LineItem{Quantity: 5, Rate: 120, GSTPercentage: 18}

	prev := ComputeLineAmount(item).TotalAmount
	for _, disc := range []float64{5, 10, 25, 50, 99, 100} {
		item.DiscountPercentage = disc
		got := ComputeLineAmount(item).TotalAmount
		assert.Less(t, got, prev, "discount %v should lower the total", disc)
		prev = got
	}
	assert.Zero(t, prev, "100%% discount zeroes the line")
}

func TestComputeLineAmountZeroQuantity(t *testing.T) {
	amount := ComputeLineAmount(LineItem{Rate: 50, GSTPercentage: 18})
	assert.Zero(t, amount.BaseAmount)
	assert.Zero(t, amount.GSTAmount)
	assert.Zero(t, amount.TotalAmount)
}

func TestComputeTotalsAdditivity(t *testing.T) {
	items := []LineItem{
		{Quantity: 10, FreeQuantity: 1, DiscountPercentage: 5, Rate: 90, GSTPercentage: 18},
		{Quantity: 3, DiscountPercentage: 0, Rate: 45.5, GSTPercentage: 12},
		{Quantity: 1, DiscountPercentage: 50, Rate: 1000, GSTPercentage: 28},
	}

	totals, err := ComputeTotals(items)
	require.NoError(t, err)

	var subtotal, tax float64
	for _, item := range items {
		amount := ComputeLineAmount(item)
		subtotal += amount.BaseAmount
		tax += amount.GSTAmount
	}

	assert.Equal(t, subtotal, totals.Subtotal)
	assert.Equal(t, tax, totals.TotalTax)
	assert.Equal(t, totals.Subtotal+totals.TotalTax, totals.GrandTotal)
}

func TestComputeTotalsSingleItemScenario(t *testing.T) {
	totals, err := ComputeTotals([]LineItem{
		{Quantity: 10, FreeQuantity: 1, DiscountPercentage: 5, Rate: 90, GSTPercentage: 18},
	})
	require.NoError(t, err)

	assert.InDelta(t, 855.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 153.9, totals.TotalTax, 1e-9)
	assert.InDelta(t, 1008.9, totals.GrandTotal, 1e-9)
}

func TestComputeTotalsRejectsEmptyInvoice(t *testing.T) {
	_, err := ComputeTotals(nil)
	require.ErrorIs(t, err, ErrNoLineItems)

	_, err = ComputeTotals([]LineItem{})
	require.ErrorIs(t, err, ErrNoLineItems)
}

func TestInvoiceNumber(t *testing.T) {
	now := time.Date(2024, 3, 7, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "INV20240307001", InvoiceNumber(now, 1))
	assert.Equal(t, "INV20240307042", InvoiceNumber(now, 42))
	assert.Equal(t, "INV20240307123", InvoiceNumber(now, 123))
}

func TestRoundAmount(t *testing.T) {
	assert.Equal(t, 153.9, RoundAmount(153.9000000001))
	assert.Equal(t, 10.35, RoundAmount(10.345))
	assert.Equal(t, 0.0, RoundAmount(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1008.90", FormatAmount(1008.9))
	assert.Equal(t, "855.00", FormatAmount(855))
	assert.Equal(t, "0.33", FormatAmount(1.0/3))
}
