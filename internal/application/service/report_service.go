package service

import (
	"context"
	"fmt"
	"time"

	"github.com/praveenkm/medistock-api/internal/billing"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// ReportService produces sales reports from persisted invoices
type ReportService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewReportService creates a new report service
func NewReportService(invoiceRepo repository.InvoiceRepository) *ReportService {
	return &ReportService{invoiceRepo: invoiceRepo}
}

// SalesReportInput represents the sales report query. Nil dates fall back to
// a window that suits the granularity: 30 days for daily, 12 months for
// monthly, 5 years for yearly.
type SalesReportInput struct {
	Period    billing.PeriodType
	StartDate *time.Time
	EndDate   *time.Time
}

// defaultWindow returns the [start, end) range used when the caller does not
// narrow the report.
func defaultWindow(period billing.PeriodType, now time.Time) (time.Time, time.Time) {
	end := now
	switch period {
	case billing.PeriodMonthly:
		return end.AddDate(-1, 0, 0), end
	case billing.PeriodYearly:
		return end.AddDate(-5, 0, 0), end
	default:
		return end.AddDate(0, 0, -30), end
	}
}

// SalesReport aggregates invoice totals into period buckets
func (s *ReportService) SalesReport(ctx context.Context, input *SalesReportInput) ([]billing.PeriodBucket, error) {
	period := input.Period
	if period == "" {
		period = billing.PeriodDaily
	}
	if !period.Valid() {
		return nil, apperror.NewBadRequestError("Invalid report period")
	}

	start, end := defaultWindow(period, time.Now())
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if !start.Before(end) {
		return nil, apperror.NewBadRequestError("Start date must be before end date")
	}

	invoices, err := s.invoiceRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	records := make([]billing.DatedRecord, 0, len(invoices))
	for _, invoice := range invoices {
		itemCount := 0
		for _, item := range invoice.Items {
			itemCount += item.Quantity
		}
		records = append(records, billing.DatedRecord{
			Timestamp: invoice.InvoiceDate,
			Amount:    invoice.GrandTotal,
			ItemCount: itemCount,
		})
	}

	return billing.Aggregate(records, period), nil
}

// DailySummary represents the report for a single calendar day
type DailySummary struct {
	Date         string           `json:"date"`
	InvoiceCount int              `json:"invoice_count"`
	ItemsSold    int              `json:"items_sold"`
	TotalSales   float64          `json:"total_sales"`
	TotalTax     float64          `json:"total_tax"`
	Invoices     []entity.Invoice `json:"invoices"`
}

// DailyReport summarizes all invoices of a calendar day
func (s *ReportService) DailyReport(ctx context.Context, date time.Time) (*DailySummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	invoices, err := s.invoiceRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{
		Date:     start.Format("2006-01-02"),
		Invoices: invoices,
	}
	for _, invoice := range invoices {
		summary.InvoiceCount++
		summary.TotalSales += invoice.GrandTotal
		summary.TotalTax += invoice.TotalTax
		for _, item := range invoice.Items {
			summary.ItemsSold += item.Quantity
		}
	}
	summary.TotalSales = billing.RoundAmount(summary.TotalSales)
	summary.TotalTax = billing.RoundAmount(summary.TotalTax)

	return summary, nil
}

// ExportSalesReportXLSX renders a sales report as an Excel workbook
func (s *ReportService) ExportSalesReportXLSX(ctx context.Context, input *SalesReportInput) (*excelize.File, error) {
	buckets, err := s.SalesReport(ctx, input)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Sales Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{"Period", "Total Sales", "Items Sold"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var totalSales float64
	var itemsSold int
	for row, bucket := range buckets {
		values := []interface{}{bucket.Period, bucket.TotalSales, bucket.ItemsSold}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalSales += bucket.TotalSales
		itemsSold += bucket.ItemsSold
	}

	// Totals row
	totalRow := len(buckets) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", totalRow), billing.RoundAmount(totalSales)); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), itemsSold); err != nil {
		return nil, err
	}

	return f, nil
}
