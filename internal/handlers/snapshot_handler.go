package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/pagination"
	"prospect/internal/services"
)

// SnapshotHandler handles net worth snapshot requests.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// ListSnapshots returns the user's net worth history
// @Summary     List net worth snapshots
// @Description List the authenticated user's net worth history, newest first
// @Tags        snapshots
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {object} pagination.PageResponse[models.NetWorthSnapshot] "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots [get]
func (h *SnapshotHandler) ListSnapshots(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var from, to time.Time
	if s := c.Query("from"); s != "" {
		if from, err = parseFlexibleTime(s); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date"))
			return
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = parseFlexibleTime(s); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date"))
			return
		}
	}

	result, err := h.snapshotService.GetSnapshots(userID, from, to, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// TriggerSnapshots records a snapshot for every user
// @Summary     Record net worth snapshots
// @Description Compute and record a net worth snapshot for every user; same-day reruns replace
// @Tags        pipeline
// @Produce     json
// @Security    PipelineKeyAuth
// @Success     200 {object} map[string]int "Number of users recorded"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /pipeline/snapshots [post]
func (h *SnapshotHandler) TriggerSnapshots(c *gin.Context) {
	recorded, err := h.snapshotService.ComputeAndRecordSnapshots(time.Now().UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recorded": recorded})
}
