package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/billing"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/request"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func salesReportInput(c *gin.Context) (*service.SalesReportInput, error) {
	var filter request.SalesReportRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		return nil, err
	}

	input := &service.SalesReportInput{
		Period: billing.PeriodType(filter.Period),
	}

	if filter.StartDate != "" {
		start, err := time.Parse("2006-01-02", filter.StartDate)
		if err != nil {
			return nil, err
		}
		input.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := time.Parse("2006-01-02", filter.EndDate)
		if err != nil {
			return nil, err
		}
		// Inclusive end date: extend to the start of the next day
		endExclusive := end.AddDate(0, 0, 1)
		input.EndDate = &endExclusive
	}

	return input, nil
}

// Sales handles the period-bucketed sales report
func (h *ReportHandler) Sales(c *gin.Context) {
	input, err := salesReportInput(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	buckets, err := h.reportService.SalesReport(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Sales report generated successfully", buckets)
}

// Daily handles the single-day sales summary (defaults to today)
func (h *ReportHandler) Daily(c *gin.Context) {
	var filter request.DailyReportRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	date := time.Now()
	if filter.Date != "" {
		parsed, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			response.BadRequest(c, "Invalid date")
			return
		}
		date = parsed
	}

	summary, err := h.reportService.DailyReport(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Daily report generated successfully", summary)
}

// ExportSales handles downloading the sales report as an Excel workbook
func (h *ReportHandler) ExportSales(c *gin.Context) {
	input, err := salesReportInput(c)
	if err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	file, err := h.reportService.ExportSalesReportXLSX(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(c.Writer); err != nil {
		response.Error(c, err)
		return
	}
}
