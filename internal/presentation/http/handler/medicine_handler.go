package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/domain/repository"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/request"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/response"
	"github.com/praveenkm/medistock-api/pkg/pagination"
)

// MedicineHandler handles medicine-related HTTP requests
type MedicineHandler struct {
	medicineService *service.MedicineService
}

// NewMedicineHandler creates a new medicine handler
func NewMedicineHandler(medicineService *service.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicineService: medicineService}
}

// List handles listing medicines with filters
func (h *MedicineHandler) List(c *gin.Context) {
	var filter request.MedicineFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MedicineFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.CategoryID != "" {
		catID, err := uuid.Parse(filter.CategoryID)
		if err == nil {
			params.CategoryID = &catID
		}
	}

	if filter.ExpiringBefore != "" {
		if cutoff, err := time.Parse("2006-01-02", filter.ExpiringBefore); err == nil {
			params.ExpiringBefore = &cutoff
		}
	}

	result, err := h.medicineService.ListMedicines(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Medicines retrieved successfully", result)
}

// Create handles creating a medicine
func (h *MedicineHandler) Create(c *gin.Context) {
	var req request.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.CreateMedicineInput{
		Name:             req.Name,
		GenericName:      req.GenericName,
		Manufacturer:     req.Manufacturer,
		CategoryID:       req.CategoryID,
		BatchNumber:      req.BatchNumber,
		HSNCode:          req.HSNCode,
		StockQuantity:    req.StockQuantity,
		UnitPrice:        req.UnitPrice,
		ReorderLevel:     req.ReorderLevel,
		StorageCondition: req.StorageCondition,
		Description:      req.Description,
	}

	if req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			response.BadRequest(c, "Invalid expiry date")
			return
		}
		input.ExpiryDate = expiry
	}

	medicine, err := h.medicineService.CreateMedicine(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Medicine created successfully", medicine)
}

// Get handles getting a single medicine
func (h *MedicineHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	medicine, err := h.medicineService.GetMedicine(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Medicine retrieved successfully", medicine)
}

// Update handles updating a medicine
func (h *MedicineHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	var req request.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateMedicineInput{
		Name:             req.Name,
		GenericName:      req.GenericName,
		Manufacturer:     req.Manufacturer,
		CategoryID:       req.CategoryID,
		BatchNumber:      req.BatchNumber,
		HSNCode:          req.HSNCode,
		StockQuantity:    req.StockQuantity,
		UnitPrice:        req.UnitPrice,
		ReorderLevel:     req.ReorderLevel,
		StorageCondition: req.StorageCondition,
		Description:      req.Description,
	}

	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			response.BadRequest(c, "Invalid expiry date")
			return
		}
		input.ExpiryDate = &expiry
	}

	medicine, err := h.medicineService.UpdateMedicine(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Medicine updated successfully", medicine)
}

// Delete handles deleting a medicine
func (h *MedicineHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid medicine ID")
		return
	}

	if err := h.medicineService.DeleteMedicine(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Medicine deleted successfully", nil)
}

// LowStock handles listing medicines at or below their reorder level
func (h *MedicineHandler) LowStock(c *gin.Context) {
	medicines, err := h.medicineService.GetLowStockMedicines(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Low stock medicines retrieved successfully", medicines)
}

// Expiring handles listing medicines expiring within the given days (default 90)
func (h *MedicineHandler) Expiring(c *gin.Context) {
	days := 0
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = parsed
	}

	medicines, err := h.medicineService.GetExpiringMedicines(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Expiring medicines retrieved successfully", medicines)
}

// Lookup handles AI-assisted medicine detail autofill
func (h *MedicineHandler) Lookup(c *gin.Context) {
	var req request.LookupMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	details, err := h.medicineService.LookupMedicineDetails(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Medicine details retrieved successfully", details)
}
