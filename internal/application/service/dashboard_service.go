package service

import (
	"context"
	"time"

	"github.com/praveenkm/medistock-api/internal/billing"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	medicineRepo    repository.MedicineRepository
	supplierRepo    repository.SupplierRepository
	invoiceRepo     repository.InvoiceRepository
	orderRepo       repository.PurchaseOrderRepository
	transactionRepo repository.TransactionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	medicineRepo repository.MedicineRepository,
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.PurchaseOrderRepository,
	transactionRepo repository.TransactionRepository,
) *DashboardService {
	return &DashboardService{
		medicineRepo:    medicineRepo,
		supplierRepo:    supplierRepo,
		invoiceRepo:     invoiceRepo,
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalMedicines        int64                  `json:"total_medicines"`
	TotalSuppliers        int64                  `json:"total_suppliers"`
	TotalInvoices         int64                  `json:"total_invoices"`
	LowStockCount         int                    `json:"low_stock_count"`
	ExpiringCount         int                    `json:"expiring_count"`
	PendingPurchaseOrders int64                  `json:"pending_purchase_orders"`
	TodaySales            float64                `json:"today_sales"`
	MonthSales            float64                `json:"month_sales"`
	WeeklySales           []billing.PeriodBucket `json:"weekly_sales"`
	RecentTransactions    []entity.Transaction   `json:"recent_transactions"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// Counts only, so a single-row page is enough
	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1

	medicineParams := &repository.MedicineFilterParams{Pagination: countParams}
	_, medicineCount, err := s.medicineRepo.List(ctx, medicineParams)
	if err != nil {
		return nil, err
	}
	stats.TotalMedicines = medicineCount

	_, supplierCount, err := s.supplierRepo.List(ctx, pagination.DefaultPagination(), "")
	if err != nil {
		return nil, err
	}
	stats.TotalSuppliers = supplierCount

	invoiceParams := &repository.InvoiceFilterParams{Pagination: countParams}
	_, invoiceCount, err := s.invoiceRepo.List(ctx, invoiceParams)
	if err != nil {
		return nil, err
	}
	stats.TotalInvoices = invoiceCount

	lowStock, err := s.medicineRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	expiring, err := s.medicineRepo.GetExpiring(ctx, time.Now().AddDate(0, 0, 90))
	if err != nil {
		return nil, err
	}
	stats.ExpiringCount = len(expiring)

	pendingStatus := enum.PurchaseOrderStatusPending
	pendingParams := &repository.PurchaseOrderFilterParams{
		Pagination: countParams,
		Status:     &pendingStatus,
	}
	_, pendingCount, err := s.orderRepo.List(ctx, pendingParams)
	if err != nil {
		return nil, err
	}
	stats.PendingPurchaseOrders = pendingCount

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayInvoices, err := s.invoiceRepo.ListBetween(ctx, todayStart, todayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	for _, invoice := range todayInvoices {
		stats.TodaySales += invoice.GrandTotal
	}
	stats.TodaySales = billing.RoundAmount(stats.TodaySales)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthInvoices, err := s.invoiceRepo.ListBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	for _, invoice := range monthInvoices {
		stats.MonthSales += invoice.GrandTotal
	}
	stats.MonthSales = billing.RoundAmount(stats.MonthSales)

	// Daily sales series for the last 7 days
	weekStart := todayStart.AddDate(0, 0, -6)
	weekInvoices, err := s.invoiceRepo.ListBetween(ctx, weekStart, todayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	records := make([]billing.DatedRecord, 0, len(weekInvoices))
	for _, invoice := range weekInvoices {
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
	stats.WeeklySales = billing.Aggregate(records, billing.PeriodDaily)

	recent, err := s.transactionRepo.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentTransactions = recent

	return stats, nil
}
