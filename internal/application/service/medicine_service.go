package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/ailookup"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// MedicineService handles medicine inventory operations
type MedicineService struct {
	medicineRepo repository.MedicineRepository
	categoryRepo repository.CategoryRepository
	lookupClient *ailookup.Client
}

// NewMedicineService creates a new medicine service. lookupClient may be nil
// when AI autofill is not configured.
func NewMedicineService(
	medicineRepo repository.MedicineRepository,
	categoryRepo repository.CategoryRepository,
	lookupClient *ailookup.Client,
) *MedicineService {
	return &MedicineService{
		medicineRepo: medicineRepo,
		categoryRepo: categoryRepo,
		lookupClient: lookupClient,
	}
}

// CreateMedicineInput represents the create medicine input
type CreateMedicineInput struct {
	Name             string
	GenericName      string
	Manufacturer     string
	CategoryID       *uuid.UUID
	BatchNumber      string
	ExpiryDate       time.Time
	HSNCode          string
	StockQuantity    int
	UnitPrice        float64
	ReorderLevel     int
	StorageCondition string
	Description      *string
}

// UpdateMedicineInput represents the update medicine input; nil fields are unchanged
type UpdateMedicineInput struct {
	Name             *string
	GenericName      *string
	Manufacturer     *string
	CategoryID       *uuid.UUID
	BatchNumber      *string
	ExpiryDate       *time.Time
	HSNCode          *string
	StockQuantity    *int
	UnitPrice        *float64
	ReorderLevel     *int
	StorageCondition *string
	Description      *string
}

// CreateMedicine creates a new medicine
func (s *MedicineService) CreateMedicine(ctx context.Context, input *CreateMedicineInput) (*entity.Medicine, error) {
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	if input.BatchNumber != "" {
		existing, err := s.medicineRepo.GetByBatchNumber(ctx, input.BatchNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Medicine with this batch number already exists")
		}
	}

	if input.StockQuantity < 0 {
		return nil, apperror.NewBadRequestError("Stock quantity cannot be negative")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	medicine := &entity.Medicine{
		Name:             input.Name,
		GenericName:      input.GenericName,
		Manufacturer:     input.Manufacturer,
		CategoryID:       input.CategoryID,
		BatchNumber:      input.BatchNumber,
		ExpiryDate:       input.ExpiryDate,
		HSNCode:          input.HSNCode,
		StockQuantity:    input.StockQuantity,
		UnitPrice:        input.UnitPrice,
		ReorderLevel:     input.ReorderLevel,
		StorageCondition: input.StorageCondition,
		Description:      input.Description,
	}

	if err := s.medicineRepo.Create(ctx, medicine); err != nil {
		return nil, err
	}

	return s.medicineRepo.GetByID(ctx, medicine.ID)
}

// GetMedicine retrieves a medicine by ID
func (s *MedicineService) GetMedicine(ctx context.Context, id uuid.UUID) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}
	return medicine, nil
}

// UpdateMedicine updates an existing medicine
func (s *MedicineService) UpdateMedicine(ctx context.Context, id uuid.UUID, input *UpdateMedicineInput) (*entity.Medicine, error) {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, apperror.NewNotFoundError("Medicine")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		medicine.CategoryID = input.CategoryID
	}

	if input.Name != nil {
		medicine.Name = *input.Name
	}
	if input.GenericName != nil {
		medicine.GenericName = *input.GenericName
	}
	if input.Manufacturer != nil {
		medicine.Manufacturer = *input.Manufacturer
	}
	if input.BatchNumber != nil {
		medicine.BatchNumber = *input.BatchNumber
	}
	if input.ExpiryDate != nil {
		medicine.ExpiryDate = *input.ExpiryDate
	}
	if input.HSNCode != nil {
		medicine.HSNCode = *input.HSNCode
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, apperror.NewBadRequestError("Stock quantity cannot be negative")
		}
		medicine.StockQuantity = *input.StockQuantity
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		medicine.UnitPrice = *input.UnitPrice
	}
	if input.ReorderLevel != nil {
		medicine.ReorderLevel = *input.ReorderLevel
	}
	if input.StorageCondition != nil {
		medicine.StorageCondition = *input.StorageCondition
	}
	if input.Description != nil {
		medicine.Description = input.Description
	}

	if err := s.medicineRepo.Update(ctx, medicine); err != nil {
		return nil, err
	}

	return s.medicineRepo.GetByID(ctx, medicine.ID)
}

// DeleteMedicine deletes a medicine
func (s *MedicineService) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	medicine, err := s.medicineRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return apperror.NewNotFoundError("Medicine")
	}
	return s.medicineRepo.Delete(ctx, id)
}

// ListMedicines lists medicines with filtering
func (s *MedicineService) ListMedicines(ctx context.Context, params *repository.MedicineFilterParams) (*pagination.PaginatedResult[entity.Medicine], error) {
	medicines, total, err := s.medicineRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(medicines, pag), nil
}

// GetLowStockMedicines returns medicines at or below their reorder level
func (s *MedicineService) GetLowStockMedicines(ctx context.Context) ([]entity.Medicine, error) {
	return s.medicineRepo.GetLowStock(ctx)
}

// GetExpiringMedicines returns medicines expiring within the given number of days
func (s *MedicineService) GetExpiringMedicines(ctx context.Context, days int) ([]entity.Medicine, error) {
	if days <= 0 {
		days = 90
	}
	cutoff := time.Now().AddDate(0, 0, days)
	return s.medicineRepo.GetExpiring(ctx, cutoff)
}

// LookupMedicineDetails asks the AI lookup service to autofill medicine
// details from a name. Returns an error when the lookup client is not configured.
func (s *MedicineService) LookupMedicineDetails(ctx context.Context, name string) (*ailookup.MedicineDetails, error) {
	if s.lookupClient == nil {
		return nil, apperror.NewAppError(503, "Medicine lookup is not configured")
	}
	if name == "" {
		return nil, apperror.NewBadRequestError("Medicine name is required")
	}
	return s.lookupClient.LookupMedicine(ctx, name)
}
