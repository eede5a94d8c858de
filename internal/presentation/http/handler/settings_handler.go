package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/internal/application/service"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/request"
	"github.com/omsai/pos-backend/internal/presentation/http/dto/response"
)

// SettingsHandler handles restaurant profile endpoints
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/v1/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles PUT /api/v1/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		Name:     req.Name,
		Tagline1: req.Tagline1,
		Tagline2: req.Tagline2,
		Footer:   req.Footer,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", settings)
}
