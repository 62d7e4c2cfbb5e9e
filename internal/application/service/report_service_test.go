package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveenkm/medistock-api/internal/billing"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
)

func testInvoice(date time.Time, grandTotal, totalTax float64, quantities ...int) *entity.Invoice {
	inv := &entity.Invoice{
		InvoiceDate: date,
		GrandTotal:  grandTotal,
		TotalTax:    totalTax,
	}
	for _, q := range quantities {
		inv.Items = append(inv.Items, entity.InvoiceItem{Quantity: q})
	}
	return inv
}

func TestSalesReportMonthlyBuckets(t *testing.T) {
	repo := newFakeInvoiceRepo(
		testInvoice(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), 1000, 152.54, 3),
		testInvoice(time.Date(2026, 1, 28, 18, 30, 0, 0, time.UTC), 500, 76.27, 2),
		testInvoice(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), 250.50, 38.21, 1),
	)
	svc := NewReportService(repo)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	buckets, err := svc.SalesReport(context.Background(), &SalesReportInput{
		Period:    billing.PeriodMonthly,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-01", buckets[0].Period)
	assert.InDelta(t, 1500.0, buckets[0].TotalSales, 1e-9)
	assert.Equal(t, 5, buckets[0].ItemsSold)
	assert.Equal(t, "2026-02", buckets[1].Period)
	assert.InDelta(t, 250.50, buckets[1].TotalSales, 1e-9)
	assert.Equal(t, 1, buckets[1].ItemsSold)
}

func TestSalesReportExcludesInvoicesOutsideWindow(t *testing.T) {
	repo := newFakeInvoiceRepo(
		testInvoice(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC), 900, 0, 1),
		testInvoice(time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC), 100, 0, 1),
	)
	svc := NewReportService(repo)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	buckets, err := svc.SalesReport(context.Background(), &SalesReportInput{
		Period:    billing.PeriodDaily,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2026-01-02", buckets[0].Period)
	assert.InDelta(t, 100.0, buckets[0].TotalSales, 1e-9)
}

func TestSalesReportInvalidPeriod(t *testing.T) {
	svc := NewReportService(newFakeInvoiceRepo())

	_, err := svc.SalesReport(context.Background(), &SalesReportInput{Period: "weekly"})
	assert.Error(t, err)
}

func TestSalesReportStartAfterEnd(t *testing.T) {
	svc := NewReportService(newFakeInvoiceRepo())

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.SalesReport(context.Background(), &SalesReportInput{
		Period:    billing.PeriodDaily,
		StartDate: &start,
		EndDate:   &end,
	})
	assert.Error(t, err)
}

func TestSalesReportEmptyWindow(t *testing.T) {
	svc := NewReportService(newFakeInvoiceRepo())

	buckets, err := svc.SalesReport(context.Background(), &SalesReportInput{Period: billing.PeriodDaily})
	require.NoError(t, err)
	assert.Empty(t, buckets)
}

func TestDailyReport(t *testing.T) {
	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	repo := newFakeInvoiceRepo(
		testInvoice(day.Add(9*time.Hour), 330.40, 35.40, 2, 1),
		testInvoice(day.Add(20*time.Hour), 118, 18, 1),
		testInvoice(day.AddDate(0, 0, 1), 999, 99, 5),
	)
	svc := NewReportService(repo)

	summary, err := svc.DailyReport(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-15", summary.Date)
	assert.Equal(t, 2, summary.InvoiceCount)
	assert.Equal(t, 4, summary.ItemsSold)
	assert.InDelta(t, 448.40, summary.TotalSales, 1e-9)
	assert.InDelta(t, 53.40, summary.TotalTax, 1e-9)
	assert.Len(t, summary.Invoices, 2)
}

func TestExportSalesReportXLSX(t *testing.T) {
	repo := newFakeInvoiceRepo(
		testInvoice(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), 1000, 152.54, 3),
		testInvoice(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC), 500, 76.27, 2),
	)
	svc := NewReportService(repo)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	f, err := svc.ExportSalesReportXLSX(context.Background(), &SalesReportInput{
		Period:    billing.PeriodMonthly,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Sales Report"

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Period", header)

	firstPeriod, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", firstPeriod)

	totalLabel, err := f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total", totalLabel)

	totalSales, err := f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "1500", totalSales)
}
