package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/praveenkm/medistock-api/internal/application/service"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/request"
	"github.com/praveenkm/medistock-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles pharmacy settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles getting the pharmacy settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Settings retrieved successfully", settings)
}

// Update handles updating the pharmacy settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:    req.StoreName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		Phone:        req.Phone,
		GSTIN:        req.GSTIN,
		DLNumbers:    req.DLNumbers,
		Terms:        req.Terms,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "Settings updated successfully", settings)
}
