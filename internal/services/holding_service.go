package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/pagination"
)

// holdingService handles holding business logic.
type holdingService struct {
	db *gorm.DB
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(db *gorm.DB) HoldingServicer {
	return &holdingService{db: db}
}

// holdingPreloads attaches the per-kind payloads and expenses.
func holdingPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Property").
		Preload("Loan").
		Preload("Shares").
		Preload("Shares.Dividends").
		Preload("Employment").
		Preload("Expenses")
}

// validateKindPayload rejects payloads that do not belong to the holding's
// kind, keeping illegal states out of the database.
func validateKindPayload(h *models.Holding) error {
	type check struct {
		present bool
		kind    models.HoldingKind
	}
	for _, c := range []check{
		{h.Property != nil, models.HoldingKindProperty},
		{h.Loan != nil, models.HoldingKindLoan},
		{h.Shares != nil, models.HoldingKindShares},
		{h.Employment != nil, models.HoldingKindEmployment},
	} {
		if c.present && h.Kind != c.kind {
			return apperrors.ErrKindPayloadMismatch
		}
	}
	return nil
}

// CreateHolding creates a holding after checking that the referenced asset
// class and holding type belong to the user and that the payload matches the
// kind.
func (s *holdingService) CreateHolding(userID string, holding *models.Holding) (*models.Holding, error) {
	if holding.Kind == "" {
		holding.Kind = models.HoldingKindOther
	}
	if err := validateKindPayload(holding); err != nil {
		return nil, err
	}
	if err := s.checkReferences(userID, holding.AssetClassID, holding.HoldingTypeID); err != nil {
		return nil, err
	}

	holding.ID = ""
	holding.UserID = userID
	if err := normalizeExpenses(holding.Expenses); err != nil {
		return nil, err
	}

	if err := s.db.Create(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetHoldingByID(userID, holding.ID)
}

// GetUserHoldings returns a filtered, paginated holding list.
func (s *holdingService) GetUserHoldings(userID string, page pagination.PageRequest, filter HoldingFilter) (*pagination.PageResponse[models.Holding], error) {
	page.Defaults()

	base := s.db.Model(&models.Holding{}).Where("user_id = ?", userID)
	if filter.AssetClassID != nil {
		base = base.Where("asset_class_id = ?", *filter.AssetClassID)
	}
	if filter.HoldingTypeID != nil {
		base = base.Where("holding_type_id = ?", *filter.HoldingTypeID)
	}
	if filter.Kind != nil {
		base = base.Where("kind = ?", *filter.Kind)
	}
	if !filter.IncludeHidden {
		base = base.Where("is_hidden = ?", false)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var holdings []models.Holding
	if err := holdingPreloads(base).
		Order("name ASC").
		Scopes(pagination.Paginate(page)).
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(holdings, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllUserHoldings returns every holding of the user, hidden included,
// with payloads preloaded. This is the projection engine's input.
func (s *holdingService) GetAllUserHoldings(userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := holdingPreloads(s.db).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// GetHoldingByID retrieves one of the user's holdings with payloads.
func (s *holdingService) GetHoldingByID(userID, holdingID string) (*models.Holding, error) {
	var holding models.Holding
	if err := holdingPreloads(s.db).
		Where("id = ? AND user_id = ?", holdingID, userID).
		First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// UpdateHolding replaces the envelope fields and, when supplied, the
// per-kind payload.
func (s *holdingService) UpdateHolding(userID, holdingID string, update *models.Holding) (*models.Holding, error) {
	holding, err := s.GetHoldingByID(userID, holdingID)
	if err != nil {
		return nil, err
	}
	if update.Kind == "" {
		update.Kind = holding.Kind
	}
	if err := validateKindPayload(update); err != nil {
		return nil, err
	}
	if update.AssetClassID == "" {
		update.AssetClassID = holding.AssetClassID
	}
	if update.HoldingTypeID == "" {
		update.HoldingTypeID = holding.HoldingTypeID
	}
	if err := s.checkReferences(userID, update.AssetClassID, update.HoldingTypeID); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"asset_class_id":  update.AssetClassID,
			"holding_type_id": update.HoldingTypeID,
			"kind":            update.Kind,
			"name":            update.Name,
			"value":           update.Value,
			"purchase_price":  update.PurchasePrice,
			"purchase_date":   update.PurchaseDate,
			"growth_rate":     update.GrowthRate,
			"income_yield":    update.IncomeYield,
			"interest_rate":   update.InterestRate,
			"is_hidden":       update.IsHidden,
			"is_liability":    update.IsLiability,
		}
		if err := tx.Model(holding).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if update.Property != nil {
			update.Property.HoldingID = holdingID
			if err := upsertPayload(tx, holding.Property, update.Property); err != nil {
				return err
			}
		}
		if update.Loan != nil {
			update.Loan.HoldingID = holdingID
			if err := upsertPayload(tx, holding.Loan, update.Loan); err != nil {
				return err
			}
		}
		if update.Shares != nil {
			update.Shares.HoldingID = holdingID
			if err := upsertPayload(tx, holding.Shares, update.Shares); err != nil {
				return err
			}
		}
		if update.Employment != nil {
			update.Employment.HoldingID = holdingID
			if err := upsertPayload(tx, holding.Employment, update.Employment); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetHoldingByID(userID, holdingID)
}

// upsertPayload creates the payload row or overwrites the existing one.
func upsertPayload[T any](tx *gorm.DB, existing, update *T) error {
	if existing != nil {
		if err := tx.Model(existing).Select("*").Omit("id", "created_at", "holding_id").Updates(update).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	if err := tx.Create(update).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteHolding soft-deletes a holding and its expenses.
func (s *holdingService) DeleteHolding(userID, holdingID string) error {
	holding, err := s.GetHoldingByID(userID, holdingID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("holding_id = ?", holdingID).Delete(&models.RecurringExpense{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(holding).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// AddExpense normalizes and attaches a recurring expense to a holding. The
// annual total is fixed here; the projection engine never re-derives it.
func (s *holdingService) AddExpense(userID, holdingID string, expense *models.RecurringExpense) (*models.RecurringExpense, error) {
	if _, err := s.GetHoldingByID(userID, holdingID); err != nil {
		return nil, err
	}

	expense.ID = ""
	expense.HoldingID = holdingID
	if err := normalizeExpense(expense); err != nil {
		return nil, err
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// RemoveExpense deletes a recurring expense from a holding.
func (s *holdingService) RemoveExpense(userID, holdingID, expenseID string) error {
	if _, err := s.GetHoldingByID(userID, holdingID); err != nil {
		return err
	}

	result := s.db.Where("id = ? AND holding_id = ?", expenseID, holdingID).Delete(&models.RecurringExpense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// checkReferences verifies the asset class and holding type exist and belong
// to the user.
func (s *holdingService) checkReferences(userID, classID, typeID string) error {
	var count int64
	if err := s.db.Model(&models.AssetClass{}).Where("id = ? AND user_id = ?", classID, userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrAssetClassNotFound
	}
	if err := s.db.Model(&models.HoldingType{}).Where("id = ? AND user_id = ?", typeID, userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrHoldingTypeNotFound
	}
	return nil
}

// normalizeExpense computes AnnualTotal from the fixed frequency multiplier
// table. Unrecognized frequencies are rejected here, at the write boundary.
func normalizeExpense(expense *models.RecurringExpense) error {
	multiplier, ok := expense.Frequency.Multiplier()
	if !ok {
		return apperrors.ErrUnknownFrequency
	}
	expense.AnnualTotal = expense.Amount * multiplier
	return nil
}

func normalizeExpenses(expenses []models.RecurringExpense) error {
	for i := range expenses {
		if err := normalizeExpense(&expenses[i]); err != nil {
			return err
		}
	}
	return nil
}
