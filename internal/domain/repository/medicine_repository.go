package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// MedicineRepository defines the interface for medicine data operations
type MedicineRepository interface {
	Create(ctx context.Context, medicine *entity.Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Medicine, error)
	// GetByIDs retrieves multiple medicines by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Medicine, error)
	GetByBatchNumber(ctx context.Context, batchNumber string) (*entity.Medicine, error)
	Update(ctx context.Context, medicine *entity.Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MedicineFilterParams) ([]entity.Medicine, int64, error)
	// GetLowStock returns medicines whose stock is at or below their reorder level
	GetLowStock(ctx context.Context) ([]entity.Medicine, error)
	// GetExpiring returns medicines whose expiry date falls on or before the cutoff
	GetExpiring(ctx context.Context, cutoff time.Time) ([]entity.Medicine, error)
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	// AtomicDecrementStock atomically decrements stock only if sufficient.
	// Returns (true, nil) if successful, (false, nil) if insufficient stock, (false, err) on error.
	AtomicDecrementStock(ctx context.Context, id uuid.UUID, amount int) (bool, error)
	// AtomicDecrementBatch atomically decrements stock for multiple medicines.
	// Returns the IDs that failed (insufficient stock). If any fail, the whole
	// transaction is rolled back.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementBatch atomically increments stock for multiple medicines (receipts/returns)
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// MedicineFilterParams contains filtering parameters for medicine queries
type MedicineFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	CategoryID     *uuid.UUID
	LowStock       bool
	ExpiringBefore *time.Time
	SortBy         string
	SortOrder      string
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error)
}
