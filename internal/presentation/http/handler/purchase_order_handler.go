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

// PurchaseOrderHandler handles purchase-order-related HTTP requests
type PurchaseOrderHandler struct {
	purchaseOrderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(purchaseOrderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchaseOrderService: purchaseOrderService}
}

// List handles listing purchase orders with filters
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var filter request.PurchaseOrderFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PurchaseOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.Status != "" {
		status := enum.PurchaseOrderStatus(filter.Status)
		if status.Valid() {
			params.Status = &status
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

	result, err := h.purchaseOrderService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.PurchaseOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.PurchaseOrderItemInput{
			MedicineID: item.MedicineID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		}
	}

	input := &service.CreatePurchaseOrderInput{
		SupplierID: req.SupplierID,
		Notes:      req.Notes,
		Items:      items,
	}

	if req.OrderDate != "" {
		orderDate, err := time.Parse("2006-01-02", req.OrderDate)
		if err != nil {
			response.BadRequest(c, "Invalid order date")
			return
		}
		input.OrderDate = orderDate
	}

	if req.ExpectedDeliveryDate != "" {
		expected, err := time.Parse("2006-01-02", req.ExpectedDeliveryDate)
		if err != nil {
			response.BadRequest(c, "Invalid expected delivery date")
			return
		}
		input.ExpectedDeliveryDate = expected
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order with its items
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.purchaseOrderService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Purchase order retrieved successfully", order)
}

// Receive handles marking a pending purchase order as received; stock is
// incremented for each item
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.purchaseOrderService.ReceivePurchaseOrder(c.Request.Context(), id, GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Purchase order received successfully", order)
}

// Cancel handles cancelling a pending purchase order
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.purchaseOrderService.CancelPurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Purchase order cancelled successfully", nil)
}

// Delete handles deleting a purchase order that has not been received
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.purchaseOrderService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Purchase order deleted successfully", nil)
}
