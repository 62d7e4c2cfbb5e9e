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

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with filters
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.PaymentType != "" {
		paymentType := enum.PaymentType(filter.PaymentType)
		if paymentType.Valid() {
			params.PaymentType = &paymentType
		}
	}

	if filter.StartDate != "" {
		if start, err := time.Parse("2006-01-02", filter.StartDate); err == nil {
			params.StartDate = &start
		}
	}
	if filter.EndDate != "" {
		if end, err := time.Parse("2006-01-02", filter.EndDate); err == nil {
			// Inclusive end date: extend to the start of the next day
			endExclusive := end.AddDate(0, 0, 1)
			params.EndDate = &endExclusive
		}
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.InvoiceItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.InvoiceItemInput{
			MedicineID:         item.MedicineID,
			Quantity:           item.Quantity,
			FreeQuantity:       item.FreeQuantity,
			DiscountPercentage: item.DiscountPercentage,
			MRP:                item.MRP,
			Rate:               item.Rate,
			GSTPercentage:      item.GSTPercentage,
		}
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		CustomerGSTIN:   req.CustomerGSTIN,
		CustomerPAN:     req.CustomerPAN,
		CustomerDLNo:    req.CustomerDLNo,
		PaymentType:     enum.PaymentType(req.PaymentType),
		Notes:           req.Notes,
		CreatedBy:       GetUserEmail(c),
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Invoice retrieved successfully", invoice)
}

// GetByNumber handles getting an invoice by its invoice number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		response.BadRequest(c, "Invoice number is required")
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByNumber(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Invoice retrieved successfully", invoice)
}

// Delete handles deleting an invoice; stock is restored for each line
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id, GetUserEmail(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Invoice deleted successfully", nil)
}
