package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/services"
)

// AssetClassHandler handles asset-class requests.
type AssetClassHandler struct {
	assetClassService services.AssetClassServicer
	auditService      services.AuditServicer
}

// NewAssetClassHandler creates a new AssetClassHandler.
func NewAssetClassHandler(assetClassService services.AssetClassServicer, auditService services.AuditServicer) *AssetClassHandler {
	return &AssetClassHandler{assetClassService: assetClassService, auditService: auditService}
}

// AssetClassRequest represents the create/update payload for an asset class.
// Rates are percentages.
type AssetClassRequest struct {
	Name               string   `json:"name" binding:"required,min=1,max=100"`
	IsLiability        bool     `json:"is_liability"`
	GrowthRateLow      *float64 `json:"growth_rate_low" binding:"omitempty,gte=-100,lte=100"`
	GrowthRateMedium   *float64 `json:"growth_rate_medium" binding:"omitempty,gte=-100,lte=100"`
	GrowthRateHigh     *float64 `json:"growth_rate_high" binding:"omitempty,gte=-100,lte=100"`
	DefaultIncomeYield *float64 `json:"default_income_yield" binding:"omitempty,gte=0,lte=100"`
}

func (r AssetClassRequest) toModel() *models.AssetClass {
	return &models.AssetClass{
		Name:               r.Name,
		IsLiability:        r.IsLiability,
		GrowthRateLow:      r.GrowthRateLow,
		GrowthRateMedium:   r.GrowthRateMedium,
		GrowthRateHigh:     r.GrowthRateHigh,
		DefaultIncomeYield: r.DefaultIncomeYield,
	}
}

// CreateAssetClass handles the creation of a new asset class
// @Summary     Create an asset class
// @Description Create a new asset class for the authenticated user
// @Tags        asset-classes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AssetClassRequest true "Asset class details"
// @Success     201 {object} models.AssetClass "Asset class created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes [post]
func (h *AssetClassHandler) CreateAssetClass(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssetClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	class, err := h.assetClassService.CreateAssetClass(userID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ASSET_CLASS", "asset_class", class.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"asset_class": class})
}

// ListAssetClasses returns the user's asset classes
// @Summary     List asset classes
// @Description List the authenticated user's asset classes with expense category templates
// @Tags        asset-classes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.AssetClass "Asset classes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes [get]
func (h *AssetClassHandler) ListAssetClasses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	classes, err := h.assetClassService.GetUserAssetClasses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_classes": classes})
}

// GetAssetClass returns a single asset class
// @Summary     Get an asset class
// @Description Get one of the authenticated user's asset classes by ID
// @Tags        asset-classes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset class ID"
// @Success     200 {object} models.AssetClass "Asset class"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes/{id} [get]
func (h *AssetClassHandler) GetAssetClass(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	classID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	class, err := h.assetClassService.GetAssetClassByID(userID, classID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset_class": class})
}

// UpdateAssetClass updates an asset class
// @Summary     Update an asset class
// @Description Update name, liability flag, growth tiers and default yield
// @Tags        asset-classes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset class ID"
// @Param       request body AssetClassRequest true "Asset class details"
// @Success     200 {object} models.AssetClass "Asset class updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes/{id} [put]
func (h *AssetClassHandler) UpdateAssetClass(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	classID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AssetClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	class, err := h.assetClassService.UpdateAssetClass(userID, classID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ASSET_CLASS", "asset_class", classID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"asset_class": class})
}

// DeleteAssetClass deletes an unused asset class
// @Summary     Delete an asset class
// @Description Delete an asset class that no holding references
// @Tags        asset-classes
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Asset class ID"
// @Success     204 "Asset class deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Asset class in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /asset-classes/{id} [delete]
func (h *AssetClassHandler) DeleteAssetClass(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	classID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetClassService.DeleteAssetClass(userID, classID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_ASSET_CLASS", "asset_class", classID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
