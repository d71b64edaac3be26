package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/finance"
)

// ToolsHandler exposes stateless financial calculators.
type ToolsHandler struct{}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// LoanScheduleRequest represents a loan schedule calculation. Rate is a
// percentage.
type LoanScheduleRequest struct {
	Principal       float64 `json:"principal" binding:"required,gt=0"`
	InterestRate    float64 `json:"interest_rate" binding:"gte=0,lte=100"`
	TermYears       float64 `json:"term_years" binding:"required,gt=0,lte=50"`
	PaymentsPerYear int     `json:"payments_per_year" binding:"omitempty,min=1,max=52"`
	Periods         int     `json:"periods" binding:"omitempty,min=1"`
}

// LoanScheduleResponse carries the payment and the amortization table.
type LoanScheduleResponse struct {
	Payment  float64                 `json:"payment"`
	Schedule []finance.ScheduleEntry `json:"schedule"`
}

// SavingsGoalRequest represents a savings goal calculation. Return is a
// percentage.
type SavingsGoalRequest struct {
	Goal                 float64 `json:"goal" binding:"required,gt=0"`
	CurrentSavings       float64 `json:"current_savings" binding:"gte=0"`
	Years                float64 `json:"years" binding:"required,gt=0,lte=100"`
	ExpectedReturn       float64 `json:"expected_return" binding:"gte=0,lte=100"`
	ContributionsPerYear int     `json:"contributions_per_year" binding:"omitempty,min=1,max=52"`
}

// CAGRRequest represents a compound annual growth rate calculation.
type CAGRRequest struct {
	InitialValue float64 `json:"initial_value" binding:"required"`
	FinalValue   float64 `json:"final_value" binding:"required,gt=0"`
	Years        float64 `json:"years" binding:"required"`
}

// LoanSchedule computes an amortization schedule
// @Summary     Compute a loan schedule
// @Description Compute the periodic payment and amortization table for a loan
// @Tags        tools
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body LoanScheduleRequest true "Loan terms"
// @Success     200 {object} LoanScheduleResponse "Payment and schedule"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tools/loan-schedule [post]
func (h *ToolsHandler) LoanSchedule(c *gin.Context) {
	var req LoanScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.PaymentsPerYear == 0 {
		req.PaymentsPerYear = 12
	}

	rate := req.InterestRate / 100
	payment := finance.LoanPayment(req.Principal, rate, req.TermYears, req.PaymentsPerYear)
	schedule := finance.AmortizationSchedule(req.Principal, rate, req.TermYears, req.PaymentsPerYear, req.Periods)

	c.JSON(http.StatusOK, LoanScheduleResponse{Payment: payment, Schedule: schedule})
}

// SavingsGoal computes the periodic savings needed to reach a goal
// @Summary     Compute required savings
// @Description Compute the periodic contribution needed to reach a savings goal
// @Tags        tools
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SavingsGoalRequest true "Goal parameters"
// @Success     200 {object} map[string]float64 "Required periodic contribution"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tools/savings-goal [post]
func (h *ToolsHandler) SavingsGoal(c *gin.Context) {
	var req SavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.ContributionsPerYear == 0 {
		req.ContributionsPerYear = 12
	}

	contribution := finance.RequiredPeriodicSavings(
		req.Goal, req.CurrentSavings, req.Years, req.ExpectedReturn/100, req.ContributionsPerYear)

	c.JSON(http.StatusOK, gin.H{"contribution": contribution})
}

// CAGR computes a compound annual growth rate
// @Summary     Compute CAGR
// @Description Compute the compound annual growth rate between two values
// @Tags        tools
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CAGRRequest true "Initial value, final value and years"
// @Success     200 {object} map[string]float64 "Rate as a percentage"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tools/cagr [post]
func (h *ToolsHandler) CAGR(c *gin.Context) {
	var req CAGRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rate, err := finance.CAGR(req.InitialValue, req.FinalValue, req.Years)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidArgument) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "initial value and years must be positive"))
			return
		}
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"rate": rate * 100})
}
