package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles the printer status request
func (h *PrinterHandler) Status(c *gin.Context) {
	response.Success(c, 200, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// TestPrint handles printing a test page
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	printout, err := h.printerService.TestPrint()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Test page printed successfully", printout)
}

// PrintInvoice handles printing a GST invoice receipt
func (h *PrinterHandler) PrintInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	printout, err := h.printerService.PrintInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Invoice printed successfully", printout)
}
