package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// TransactionService handles stock ledger operations
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	medicineRepo    repository.MedicineRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repository.TransactionRepository,
	medicineRepo repository.MedicineRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		medicineRepo:    medicineRepo,
	}
}

// CreateTransactionInput represents a manual stock movement input
type CreateTransactionInput struct {
	Type            enum.TransactionType
	MedicineID      uuid.UUID
	SupplierID      *uuid.UUID
	Quantity        int
	UnitPrice       float64
	ReferenceNumber *string
	Notes           *string
	CreatedBy       string
}

// CreateTransaction records a manual stock movement and applies it to the
// medicine's stock. Purchases and returns add stock; sales remove it;
// adjustments set quantity relative to the current level (positive or negative).
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid transaction type")
	}
	if input.Quantity == 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be zero")
	}
	if input.Type != enum.TransactionTypeAdjustment && input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	medicine, err := s.medicineRepo.GetByID(ctx, input.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	switch input.Type {
	case enum.TransactionTypeSale:
		ok, err := s.medicineRepo.AtomicDecrementStock(ctx, input.MedicineID, input.Quantity)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperror.NewBadRequestError("Insufficient stock for " + medicine.Name)
		}
	case enum.TransactionTypePurchase, enum.TransactionTypeReturn:
		increments := map[uuid.UUID]int{input.MedicineID: input.Quantity}
		if err := s.medicineRepo.AtomicIncrementBatch(ctx, increments); err != nil {
			return nil, err
		}
	case enum.TransactionTypeAdjustment:
		if input.Quantity < 0 {
			ok, err := s.medicineRepo.AtomicDecrementStock(ctx, input.MedicineID, -input.Quantity)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, apperror.NewBadRequestError("Adjustment would make stock negative")
			}
		} else {
			increments := map[uuid.UUID]int{input.MedicineID: input.Quantity}
			if err := s.medicineRepo.AtomicIncrementBatch(ctx, increments); err != nil {
				return nil, err
			}
		}
	}

	quantity := input.Quantity
	if quantity < 0 {
		quantity = -quantity
	}

	transaction := &entity.Transaction{
		Type:            input.Type,
		MedicineID:      input.MedicineID,
		SupplierID:      input.SupplierID,
		Quantity:        input.Quantity,
		UnitPrice:       input.UnitPrice,
		TotalPrice:      input.UnitPrice * float64(quantity),
		ReferenceNumber: input.ReferenceNumber,
		Notes:           input.Notes,
		CreatedBy:       input.CreatedBy,
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return s.transactionRepo.GetByID(ctx, transaction.ID)
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return transaction, nil
}

// ListTransactions lists stock transactions with filtering
func (s *TransactionService) ListTransactions(ctx context.Context, params *repository.TransactionFilterParams) (*pagination.PaginatedResult[entity.Transaction], error) {
	transactions, total, err := s.transactionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(transactions, pag), nil
}
