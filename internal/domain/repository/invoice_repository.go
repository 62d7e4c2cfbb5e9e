package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)
	// GetWithItems retrieves an invoice with its line items and their medicines preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListBetween returns all invoices with invoice dates in [start, end), items preloaded
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.Invoice, error)
	// NextSequenceForDate returns the next invoice sequence number for the given
	// calendar day. The counter is monotonic per day and never reuses a value,
	// even when invoices from that day are deleted.
	NextSequenceForDate(ctx context.Context, date time.Time) (int, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	PaymentType *enum.PaymentType
	StartDate   *time.Time
	EndDate     *time.Time
	SortBy      string
	SortOrder   string
}
