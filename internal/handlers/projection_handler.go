package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/services"
)

// ProjectionHandler handles projection requests.
type ProjectionHandler struct {
	projectionService services.ProjectionServicer
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(projectionService services.ProjectionServicer) *ProjectionHandler {
	return &ProjectionHandler{projectionService: projectionService}
}

// GetDefaults returns the derived projection defaults
// @Summary     Get projection defaults
// @Description Get the default projection configuration for the authenticated user
// @Tags        projections
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} projection.Config "Default configuration"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/defaults [get]
func (h *ProjectionHandler) GetDefaults(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cfg, err := h.projectionService.DefaultConfig(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// Run executes a projection
// @Summary     Run a projection
// @Description Project the authenticated user's balance sheet forward, merging overrides over the defaults
// @Tags        projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.ProjectionOverrides true "Configuration overrides"
// @Success     200 {object} projection.Result "Projection result"
// @Failure     400 {object} ErrorResponse "Invalid configuration"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projections/run [post]
func (h *ProjectionHandler) Run(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var overrides services.ProjectionOverrides
	if err := c.ShouldBindJSON(&overrides); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.projectionService.Run(userID, overrides)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": result})
}
