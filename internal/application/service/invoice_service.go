package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/billing"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// InvoiceService handles GST invoice operations
type InvoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	medicineRepo    repository.MedicineRepository
	transactionRepo repository.TransactionRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	medicineRepo repository.MedicineRepository,
	transactionRepo repository.TransactionRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		medicineRepo:    medicineRepo,
		transactionRepo: transactionRepo,
	}
}

// InvoiceItemInput represents one line of a new invoice
type InvoiceItemInput struct {
	MedicineID         uuid.UUID
	Quantity           int
	FreeQuantity       int
	DiscountPercentage float64
	MRP                float64
	Rate               float64
	GSTPercentage      float64
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerName    string
	CustomerPhone   *string
	CustomerAddress *string
	CustomerGSTIN   *string
	CustomerPAN     *string
	CustomerDLNo    *string
	PaymentType     enum.PaymentType
	Notes           *string
	CreatedBy       string
	Items           []InvoiceItemInput
}

// CreateInvoice creates a new invoice: computes line amounts and totals,
// assigns the next invoice number for the day, decrements stock atomically
// (paid plus free quantities) and records one sale transaction per line.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Invoice must have at least one line item")
	}
	if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}
	if input.PaymentType != "" && !input.PaymentType.Valid() {
		return nil, apperror.NewBadRequestError("Invalid payment type")
	}

	// Batch fetch all medicines in one query (prevents N+1)
	medicineIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		medicineIDs[i] = item.MedicineID
	}

	medicines, err := s.medicineRepo.GetByIDs(ctx, medicineIDs)
	if err != nil {
		return nil, err
	}

	medicineMap := make(map[uuid.UUID]*entity.Medicine, len(medicines))
	for i := range medicines {
		medicineMap[medicines[i].ID] = &medicines[i]
	}

	lineItems := make([]billing.LineItem, 0, len(input.Items))
	stockDecrements := make(map[uuid.UUID]int)

	for _, item := range input.Items {
		medicine, exists := medicineMap[item.MedicineID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Medicine %s", item.MedicineID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}
		if item.FreeQuantity < 0 {
			return nil, apperror.NewBadRequestError("Free quantity cannot be negative")
		}
		if item.DiscountPercentage < 0 || item.DiscountPercentage > 100 {
			return nil, apperror.NewBadRequestError("Discount percentage must be between 0 and 100")
		}

		lineItems = append(lineItems, billing.LineItem{
			MedicineID:         item.MedicineID,
			BatchNumber:        medicine.BatchNumber,
			ExpiryDate:         medicine.ExpiryDate,
			HSNCode:            medicine.HSNCode,
			Quantity:           item.Quantity,
			FreeQuantity:       item.FreeQuantity,
			DiscountPercentage: item.DiscountPercentage,
			MRP:                item.MRP,
			Rate:               item.Rate,
			GSTPercentage:      item.GSTPercentage,
		})

		// Free units leave the shelf too
		stockDecrements[item.MedicineID] += item.Quantity + item.FreeQuantity
	}

	totals, err := billing.ComputeTotals(lineItems)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invoice must have at least one line item")
	}

	// Atomically decrement stock - race-condition safe. If any medicine has
	// insufficient stock, the whole operation fails.
	failedIDs, err := s.medicineRepo.AtomicDecrementBatch(ctx, stockDecrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		var failedNames []string
		for _, id := range failedIDs {
			if medicine, exists := medicineMap[id]; exists {
				failedNames = append(failedNames, medicine.Name)
			}
		}
		return nil, apperror.NewAppError(400, fmt.Sprintf("Insufficient stock for: %v", failedNames))
	}

	now := time.Now()
	seq, err := s.invoiceRepo.NextSequenceForDate(ctx, now)
	if err != nil {
		_ = s.medicineRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	paymentType := input.PaymentType
	if paymentType == "" {
		paymentType = enum.PaymentTypeCash
	}

	invoice := &entity.Invoice{
		InvoiceNumber:   billing.InvoiceNumber(now, seq),
		InvoiceDate:     now,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerAddress: input.CustomerAddress,
		CustomerGSTIN:   input.CustomerGSTIN,
		CustomerPAN:     input.CustomerPAN,
		CustomerDLNo:    input.CustomerDLNo,
		TotalAmount:     billing.RoundAmount(totals.Subtotal),
		TotalTax:        billing.RoundAmount(totals.TotalTax),
		GrandTotal:      billing.RoundAmount(totals.GrandTotal),
		PaymentType:     paymentType,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}

	for _, li := range lineItems {
		amount := billing.ComputeLineAmount(li)
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			MedicineID:         li.MedicineID,
			BatchNumber:        li.BatchNumber,
			ExpiryDate:         li.ExpiryDate,
			HSNCode:            li.HSNCode,
			Quantity:           li.Quantity,
			FreeQuantity:       li.FreeQuantity,
			DiscountPercentage: li.DiscountPercentage,
			MRP:                li.MRP,
			Rate:               li.Rate,
			GSTPercentage:      li.GSTPercentage,
			GSTAmount:          billing.RoundAmount(amount.GSTAmount),
			TotalAmount:        billing.RoundAmount(amount.TotalAmount),
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		// Stock was already decremented - restore it
		_ = s.medicineRepo.AtomicIncrementBatch(ctx, stockDecrements)
		return nil, err
	}

	// Record one sale transaction per line in the stock ledger
	transactions := make([]entity.Transaction, 0, len(input.Items))
	refNumber := invoice.InvoiceNumber
	for _, item := range invoice.Items {
		transactions = append(transactions, entity.Transaction{
			Type:            enum.TransactionTypeSale,
			MedicineID:      item.MedicineID,
			Quantity:        item.Quantity + item.FreeQuantity,
			UnitPrice:       item.Rate,
			TotalPrice:      item.TotalAmount,
			ReferenceNumber: &refNumber,
			CreatedBy:       input.CreatedBy,
		})
	}
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// GetInvoiceByNumber retrieves an invoice by its invoice number
func (s *InvoiceService) GetInvoiceByNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByInvoiceNumber(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// DeleteInvoice deletes an invoice, restores the dispensed stock and records
// return transactions. The invoice number is never reused.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID, deletedBy string) error {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range invoice.Items {
		stockIncrements[item.MedicineID] += item.Quantity + item.FreeQuantity
	}

	if err := s.medicineRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return err
	}

	transactions := make([]entity.Transaction, 0, len(invoice.Items))
	refNumber := invoice.InvoiceNumber
	for _, item := range invoice.Items {
		transactions = append(transactions, entity.Transaction{
			Type:            enum.TransactionTypeReturn,
			MedicineID:      item.MedicineID,
			Quantity:        item.Quantity + item.FreeQuantity,
			UnitPrice:       item.Rate,
			TotalPrice:      item.TotalAmount,
			ReferenceNumber: &refNumber,
			CreatedBy:       deletedBy,
		})
	}
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// RecomputeTotals recomputes an invoice's totals from its stored line items.
// Stored and recomputed values agree to the cent for any persisted invoice.
func (s *InvoiceService) RecomputeTotals(invoice *entity.Invoice) (billing.Totals, error) {
	lineItems := make([]billing.LineItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lineItems = append(lineItems, billing.LineItem{
			MedicineID:         item.MedicineID,
			BatchNumber:        item.BatchNumber,
			ExpiryDate:         item.ExpiryDate,
			HSNCode:            item.HSNCode,
			Quantity:           item.Quantity,
			FreeQuantity:       item.FreeQuantity,
			DiscountPercentage: item.DiscountPercentage,
			MRP:                item.MRP,
			Rate:               item.Rate,
			GSTPercentage:      item.GSTPercentage,
		})
	}
	return billing.ComputeTotals(lineItems)
}
