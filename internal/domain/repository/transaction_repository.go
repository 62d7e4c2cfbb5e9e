package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// TransactionRepository defines the interface for stock ledger data operations
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	CreateBatch(ctx context.Context, transactions []entity.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	// ListRecent returns the most recent transactions, medicines preloaded
	ListRecent(ctx context.Context, limit int) ([]entity.Transaction, error)
	// ListByTypeAndRange returns transactions of the given type with created_at in [start, end)
	ListByTypeAndRange(ctx context.Context, txType enum.TransactionType, start, end time.Time) ([]entity.Transaction, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.TransactionType
	MedicineID *uuid.UUID
	SupplierID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
