package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/services"
)

// SettingsHandler handles system settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SettingsRequest represents the settings update payload. Inflation tiers are
// percentages.
type SettingsRequest struct {
	InflationRateLow    float64 `json:"inflation_rate_low" binding:"gte=0,lte=100"`
	InflationRateMedium float64 `json:"inflation_rate_medium" binding:"gte=0,lte=100"`
	InflationRateHigh   float64 `json:"inflation_rate_high" binding:"gte=0,lte=100"`
	BasicModeYears      int     `json:"basic_mode_years" binding:"required,min=1,max=50"`
	AdvancedModeYears   int     `json:"advanced_mode_years" binding:"required,min=1,max=50"`
}

// GetSettings returns the system settings
// @Summary     Get system settings
// @Description Get the system-wide projection defaults
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.SystemSettings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings updates the system settings
// @Summary     Update system settings
// @Description Update the system-wide projection defaults
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SettingsRequest true "Settings"
// @Success     200 {object} models.SystemSettings "Settings updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.Update(&models.SystemSettings{
		InflationRateLow:    req.InflationRateLow,
		InflationRateMedium: req.InflationRateMedium,
		InflationRateHigh:   req.InflationRateHigh,
		BasicModeYears:      req.BasicModeYears,
		AdvancedModeYears:   req.AdvancedModeYears,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
