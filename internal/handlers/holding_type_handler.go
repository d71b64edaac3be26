package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/services"
)

// HoldingTypeHandler handles holding-type requests.
type HoldingTypeHandler struct {
	holdingTypeService services.HoldingTypeServicer
	auditService       services.AuditServicer
}

// NewHoldingTypeHandler creates a new HoldingTypeHandler.
func NewHoldingTypeHandler(holdingTypeService services.HoldingTypeServicer, auditService services.AuditServicer) *HoldingTypeHandler {
	return &HoldingTypeHandler{holdingTypeService: holdingTypeService, auditService: auditService}
}

// HoldingTypeRequest represents the create/update payload for a holding type.
// TaxSettings is an opaque JSON document passed through to the tax layer.
type HoldingTypeRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	CountryCode string `json:"country_code" binding:"omitempty,iso3166_1_alpha2"`
	TaxSettings string `json:"tax_settings" binding:"omitempty,json"`
}

func (r HoldingTypeRequest) toModel() *models.HoldingType {
	return &models.HoldingType{
		Name:        r.Name,
		CountryCode: r.CountryCode,
		TaxSettings: r.TaxSettings,
	}
}

// CreateHoldingType handles the creation of a new holding type
// @Summary     Create a holding type
// @Description Create a new ownership grouping for the authenticated user
// @Tags        holding-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body HoldingTypeRequest true "Holding type details"
// @Success     201 {object} models.HoldingType "Holding type created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holding-types [post]
func (h *HoldingTypeHandler) CreateHoldingType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HoldingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ht, err := h.holdingTypeService.CreateHoldingType(userID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_HOLDING_TYPE", "holding_type", ht.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"holding_type": ht})
}

// ListHoldingTypes returns the user's holding types
// @Summary     List holding types
// @Description List the authenticated user's ownership groupings
// @Tags        holding-types
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.HoldingType "Holding types"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holding-types [get]
func (h *HoldingTypeHandler) ListHoldingTypes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	types, err := h.holdingTypeService.GetUserHoldingTypes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding_types": types})
}

// GetHoldingType returns a single holding type
// @Summary     Get a holding type
// @Description Get one of the authenticated user's holding types by ID
// @Tags        holding-types
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding type ID"
// @Success     200 {object} models.HoldingType "Holding type"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holding-types/{id} [get]
func (h *HoldingTypeHandler) GetHoldingType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ht, err := h.holdingTypeService.GetHoldingTypeByID(userID, typeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding_type": ht})
}

// UpdateHoldingType updates a holding type
// @Summary     Update a holding type
// @Description Update the name, country and tax settings of a holding type
// @Tags        holding-types
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding type ID"
// @Param       request body HoldingTypeRequest true "Holding type details"
// @Success     200 {object} models.HoldingType "Holding type updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holding-types/{id} [put]
func (h *HoldingTypeHandler) UpdateHoldingType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HoldingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ht, err := h.holdingTypeService.UpdateHoldingType(userID, typeID, req.toModel())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_HOLDING_TYPE", "holding_type", typeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"holding_type": ht})
}

// DeleteHoldingType deletes an unused holding type
// @Summary     Delete a holding type
// @Description Delete a holding type that no holding references
// @Tags        holding-types
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding type ID"
// @Success     204 "Holding type deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     409 {object} ErrorResponse "Holding type in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holding-types/{id} [delete]
func (h *HoldingTypeHandler) DeleteHoldingType(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	typeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingTypeService.DeleteHoldingType(userID, typeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_HOLDING_TYPE", "holding_type", typeID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
