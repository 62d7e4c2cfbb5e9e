package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/domain/enum"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/request"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/response"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// TransactionHandler handles stock movement HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// List handles listing transactions with filters
func (h *TransactionHandler) List(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Type != "" {
		txType := enum.TransactionType(filter.Type)
		if txType.Valid() {
			params.Type = &txType
		}
	}

	if filter.MedicineID != "" {
		medicineID, err := uuid.Parse(filter.MedicineID)
		if err == nil {
			params.MedicineID = &medicineID
		}
	}

	if filter.SupplierID != "" {
		supplierID, err := uuid.Parse(filter.SupplierID)
		if err == nil {
			params.SupplierID = &supplierID
		}
	}

	if filter.StartDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			endExclusive := end.AddDate(0, 0, 1)
			params.EndDate = &endExclusive
		}
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved successfully", result)
}

// Create handles recording a manual stock movement
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		Type:            enum.TransactionType(req.Type),
		MedicineID:      req.MedicineID,
		SupplierID:      req.SupplierID,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		CreatedBy:       GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction recorded successfully", transaction)
}

// Get handles getting a single transaction
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	transaction, err := h.transactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Transaction retrieved successfully", transaction)
}
