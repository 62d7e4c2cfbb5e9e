package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/domain/entity"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/pkg/apperror"
	"github.com/praveenkm/medistock-api/pkg/pagination"
	"github.com/praveenkm/medistock-api/pkg/utils"
)

// PurchaseOrderService handles purchase order operations
type PurchaseOrderService struct {
	orderRepo       repository.PurchaseOrderRepository
	supplierRepo    repository.SupplierRepository
	medicineRepo    repository.MedicineRepository
	transactionRepo repository.TransactionRepository
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	medicineRepo repository.MedicineRepository,
	transactionRepo repository.TransactionRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:       orderRepo,
		supplierRepo:    supplierRepo,
		medicineRepo:    medicineRepo,
		transactionRepo: transactionRepo,
	}
}

// PurchaseOrderItemInput represents an item of a new purchase order
type PurchaseOrderItemInput struct {
	MedicineID uuid.UUID
	Quantity   int
	UnitPrice  float64
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	SupplierID           uuid.UUID
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Notes                *string
	Items                []PurchaseOrderItemInput
}

// CreatePurchaseOrder creates a new pending purchase order
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order must have at least one item")
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
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

	var totalAmount float64
	items := make([]entity.PurchaseOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		if _, exists := medicineMap[item.MedicineID]; !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Medicine %s", item.MedicineID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}

		lineTotal := item.UnitPrice * float64(item.Quantity)
		totalAmount += lineTotal
		items = append(items, entity.PurchaseOrderItem{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Total:      lineTotal,
		})
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	count, err := s.orderRepo.CountForYear(ctx, orderDate.Year())
	if err != nil {
		return nil, err
	}

	order := &entity.PurchaseOrder{
		SupplierID:           input.SupplierID,
		ReferenceNumber:      utils.PurchaseOrderReference(orderDate.Year(), int(count)+1),
		OrderDate:            orderDate,
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		Status:               enum.PurchaseOrderStatusPending,
		TotalAmount:          totalAmount,
		Notes:                input.Notes,
		Items:                items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetPurchaseOrder retrieves a purchase order with supplier and items
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrders lists purchase orders with filtering
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) (*pagination.PaginatedResult[entity.PurchaseOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ReceivePurchaseOrder marks a pending order as received, increments stock
// for every line and records purchase transactions in the stock ledger.
func (s *PurchaseOrderService) ReceivePurchaseOrder(ctx context.Context, id uuid.UUID, receivedBy string) (*entity.PurchaseOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}

	if order.Status != enum.PurchaseOrderStatusPending {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Cannot receive a %s purchase order", order.Status))
	}

	stockIncrements := make(map[uuid.UUID]int)
	for _, item := range order.Items {
		stockIncrements[item.MedicineID] += item.Quantity
	}

	if err := s.medicineRepo.AtomicIncrementBatch(ctx, stockIncrements); err != nil {
		return nil, err
	}

	transactions := make([]entity.Transaction, 0, len(order.Items))
	refNumber := order.ReferenceNumber
	for _, item := range order.Items {
		transactions = append(transactions, entity.Transaction{
			Type:            enum.TransactionTypePurchase,
			MedicineID:      item.MedicineID,
			SupplierID:      &order.SupplierID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TotalPrice:      item.Total,
			ReferenceNumber: &refNumber,
			CreatedBy:       receivedBy,
		})
	}
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, enum.PurchaseOrderStatusReceived); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, id)
}

// CancelPurchaseOrder cancels a pending purchase order. Received orders
// cannot be cancelled.
func (s *PurchaseOrderService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	if order.Status != enum.PurchaseOrderStatusPending {
		return apperror.NewBadRequestError(fmt.Sprintf("Cannot cancel a %s purchase order", order.Status))
	}

	return s.orderRepo.UpdateStatus(ctx, id, enum.PurchaseOrderStatusCancelled)
}

// DeletePurchaseOrder deletes a purchase order that has not been received
func (s *PurchaseOrderService) DeletePurchaseOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Purchase order")
	}

	if order.Status == enum.PurchaseOrderStatusReceived {
		return apperror.NewBadRequestError("Cannot delete a received purchase order")
	}

	return s.orderRepo.Delete(ctx, id)
}
