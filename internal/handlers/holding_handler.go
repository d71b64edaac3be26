package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/pagination"
	"prospect/internal/services"
)

// HoldingHandler handles holding requests.
type HoldingHandler struct {
	holdingService services.HoldingServicer
	auditService   services.AuditServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingService services.HoldingServicer, auditService services.AuditServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService, auditService: auditService}
}

// PropertyDetailsRequest carries rental and mortgage fields for property
// holdings. Rates are percentages.
type PropertyDetailsRequest struct {
	IsRental        bool                    `json:"is_rental"`
	RentalIncome    float64                 `json:"rental_income" binding:"gte=0"`
	RentalFrequency models.PaymentFrequency `json:"rental_frequency" binding:"omitempty,payment_frequency"`
	VacancyRate     *float64                `json:"vacancy_rate" binding:"omitempty,gte=0,lte=100"`

	HasMortgage        bool    `json:"has_mortgage"`
	MortgageAmount     float64 `json:"mortgage_amount" binding:"gte=0"`
	MortgageRate       float64 `json:"mortgage_rate" binding:"gte=0,lte=100"`
	MortgageTermMonths int     `json:"mortgage_term_months" binding:"gte=0"`
}

// LoanDetailsRequest carries amortization terms for structured loans.
type LoanDetailsRequest struct {
	OriginalAmount float64  `json:"original_amount" binding:"required,gt=0"`
	InterestRate   float64  `json:"interest_rate" binding:"gte=0,lte=100"`
	TermMonths     int      `json:"term_months" binding:"required,gt=0"`
	StartDate      *string  `json:"start_date"`
	Payment        *float64 `json:"payment" binding:"omitempty,gt=0"`
}

// ShareDetailsRequest carries listed-security fields for share holdings.
type ShareDetailsRequest struct {
	Ticker        string   `json:"ticker" binding:"max=20"`
	Quantity      float64  `json:"quantity" binding:"gte=0"`
	CurrentPrice  float64  `json:"current_price" binding:"gte=0"`
	DividendYield *float64 `json:"dividend_yield" binding:"omitempty,gte=0,lte=100"`
}

// EmploymentDetailsRequest carries salary fields for employment holdings.
type EmploymentDetailsRequest struct {
	BaseSalary      float64                 `json:"base_salary" binding:"required,gt=0"`
	SalaryFrequency models.PaymentFrequency `json:"salary_frequency" binding:"omitempty,payment_frequency"`
	BonusType       models.BonusType        `json:"bonus_type" binding:"omitempty,bonus_type"`
	BonusAmount     float64                 `json:"bonus_amount" binding:"gte=0"`
	BonusPercent    float64                 `json:"bonus_percent" binding:"gte=0,lte=100"`
	BonusLikelihood *float64                `json:"bonus_likelihood" binding:"omitempty,gte=0,lte=100"`
}

// HoldingRequest represents the create/update payload for a holding. Exactly
// one payload matching the kind may be supplied.
type HoldingRequest struct {
	AssetClassID  string             `json:"asset_class_id" binding:"required,uuid"`
	HoldingTypeID string             `json:"holding_type_id" binding:"required,uuid"`
	Kind          models.HoldingKind `json:"kind" binding:"omitempty,holding_kind"`
	Name          string             `json:"name" binding:"required,min=1,max=200"`
	Value         float64            `json:"value" binding:"gte=0"`
	PurchasePrice *float64           `json:"purchase_price" binding:"omitempty,gte=0"`
	PurchaseDate  *string            `json:"purchase_date"`
	GrowthRate    *float64           `json:"growth_rate" binding:"omitempty,gte=-100,lte=100"`
	IncomeYield   *float64           `json:"income_yield" binding:"omitempty,gte=0,lte=100"`
	InterestRate  *float64           `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	IsHidden      bool               `json:"is_hidden"`
	IsLiability   bool               `json:"is_liability"`

	Property   *PropertyDetailsRequest   `json:"property"`
	Loan       *LoanDetailsRequest       `json:"loan"`
	Shares     *ShareDetailsRequest      `json:"shares"`
	Employment *EmploymentDetailsRequest `json:"employment"`
}

// ExpenseRequest represents a recurring expense payload.
type ExpenseRequest struct {
	CategoryID *string                 `json:"category_id" binding:"omitempty,uuid"`
	Name       string                  `json:"name" binding:"required,min=1,max=200"`
	Amount     float64                 `json:"amount" binding:"required,gt=0"`
	Frequency  models.ExpenseFrequency `json:"frequency" binding:"required,expense_frequency"`
	Notes      string                  `json:"notes" binding:"max=1000"`
}

func (r HoldingRequest) toModel() (*models.Holding, error) {
	holding := &models.Holding{
		AssetClassID:  r.AssetClassID,
		HoldingTypeID: r.HoldingTypeID,
		Kind:          r.Kind,
		Name:          r.Name,
		Value:         r.Value,
		PurchasePrice: r.PurchasePrice,
		GrowthRate:    r.GrowthRate,
		IncomeYield:   r.IncomeYield,
		InterestRate:  r.InterestRate,
		IsHidden:      r.IsHidden,
		IsLiability:   r.IsLiability,
	}

	if r.PurchaseDate != nil {
		t, err := parseFlexibleTime(*r.PurchaseDate)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid purchase_date")
		}
		holding.PurchaseDate = &t
	}

	if r.Property != nil {
		holding.Property = &models.PropertyDetails{
			IsRental:           r.Property.IsRental,
			RentalIncome:       r.Property.RentalIncome,
			RentalFrequency:    r.Property.RentalFrequency,
			VacancyRate:        r.Property.VacancyRate,
			HasMortgage:        r.Property.HasMortgage,
			MortgageAmount:     r.Property.MortgageAmount,
			MortgageRate:       r.Property.MortgageRate,
			MortgageTermMonths: r.Property.MortgageTermMonths,
		}
	}
	if r.Loan != nil {
		loan := &models.LoanDetails{
			OriginalAmount: r.Loan.OriginalAmount,
			InterestRate:   r.Loan.InterestRate,
			TermMonths:     r.Loan.TermMonths,
			Payment:        r.Loan.Payment,
		}
		if r.Loan.StartDate != nil {
			t, err := parseFlexibleTime(*r.Loan.StartDate)
			if err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid loan start_date")
			}
			loan.StartDate = &t
		}
		holding.Loan = loan
	}
	if r.Shares != nil {
		holding.Shares = &models.ShareDetails{
			Ticker:        r.Shares.Ticker,
			Quantity:      r.Shares.Quantity,
			CurrentPrice:  r.Shares.CurrentPrice,
			DividendYield: r.Shares.DividendYield,
		}
	}
	if r.Employment != nil {
		holding.Employment = &models.EmploymentDetails{
			BaseSalary:      r.Employment.BaseSalary,
			SalaryFrequency: r.Employment.SalaryFrequency,
			BonusType:       r.Employment.BonusType,
			BonusAmount:     r.Employment.BonusAmount,
			BonusPercent:    r.Employment.BonusPercent,
			BonusLikelihood: r.Employment.BonusLikelihood,
		}
	}

	return holding, nil
}

// CreateHolding handles the creation of a new holding
// @Summary     Create a holding
// @Description Create a new asset or liability holding with an optional per-kind payload
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body HoldingRequest true "Holding details"
// @Success     201 {object} models.Holding "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input or kind/payload mismatch"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Asset class or holding type not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) CreateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := req.toModel()
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.holdingService.CreateHolding(userID, holding)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_HOLDING", "holding", created.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "kind": string(created.Kind)})

	c.JSON(http.StatusCreated, gin.H{"holding": created})
}

// ListHoldings returns a paginated, filterable holding list
// @Summary     List holdings
// @Description List the authenticated user's holdings with optional filters
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       asset_class_id query string false "Filter by asset class"
// @Param       holding_type_id query string false "Filter by holding type"
// @Param       kind query string false "Filter by kind"
// @Param       include_hidden query bool false "Include hidden holdings"
// @Success     200 {object} pagination.PageResponse[models.Holding] "Holdings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
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

	var query struct {
		AssetClassID  *string `form:"asset_class_id" binding:"omitempty,uuid"`
		HoldingTypeID *string `form:"holding_type_id" binding:"omitempty,uuid"`
		Kind          *string `form:"kind" binding:"omitempty,holding_kind"`
		IncludeHidden bool    `form:"include_hidden"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.HoldingFilter{
		AssetClassID:  query.AssetClassID,
		HoldingTypeID: query.HoldingTypeID,
		IncludeHidden: query.IncludeHidden,
	}
	if query.Kind != nil {
		kind := models.HoldingKind(*query.Kind)
		filter.Kind = &kind
	}

	result, err := h.holdingService.GetUserHoldings(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetHolding returns a single holding with payloads and expenses
// @Summary     Get a holding
// @Description Get one of the authenticated user's holdings by ID
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} models.Holding "Holding"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHoldingByID(userID, holdingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"holding": holding})
}

// UpdateHolding updates a holding and its payload
// @Summary     Update a holding
// @Description Update the envelope fields and optionally the per-kind payload
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Param       request body HoldingRequest true "Holding details"
// @Success     200 {object} models.Holding "Holding updated"
// @Failure     400 {object} ErrorResponse "Invalid input or kind/payload mismatch"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := req.toModel()
	if err != nil {
		respondWithError(c, err)
		return
	}

	updated, err := h.holdingService.UpdateHolding(userID, holdingID, holding)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_HOLDING", "holding", holdingID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"holding": updated})
}

// DeleteHolding deletes a holding
// @Summary     Delete a holding
// @Description Delete a holding and its recurring expenses
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     204 "Holding deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(userID, holdingID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_HOLDING", "holding", holdingID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// AddExpense attaches a recurring expense to a holding
// @Summary     Add a recurring expense
// @Description Attach a recurring expense to a holding; the annual total is derived from the frequency
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.RecurringExpense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown frequency"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id}/expenses [post]
func (h *HoldingHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.holdingService.AddExpense(userID, holdingID, &models.RecurringExpense{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Amount:     req.Amount,
		Frequency:  req.Frequency,
		Notes:      req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"holding_id": holdingID, "name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// RemoveExpense removes a recurring expense from a holding
// @Summary     Remove a recurring expense
// @Description Remove a recurring expense from a holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Param       expenseId path string true "Expense ID"
// @Success     204 "Expense removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding or expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/{id}/expenses/{expenseId} [delete]
func (h *HoldingHandler) RemoveExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "expenseId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.RemoveExpense(userID, holdingID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "REMOVE_EXPENSE", "expense", expenseID, c.ClientIP(),
		map[string]interface{}{"holding_id": holdingID})

	c.Status(http.StatusNoContent)
}
