package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
)

// assetClassService handles asset-class business logic.
type assetClassService struct {
	db *gorm.DB
}

// NewAssetClassService creates a new AssetClassServicer.
func NewAssetClassService(db *gorm.DB) AssetClassServicer {
	return &assetClassService{db: db}
}

// defaultAssetClasses is the reference data seeded for every new user.
// Growth tiers and yields are percentages.
func defaultAssetClasses() []models.AssetClass {
	p := func(v float64) *float64 { return &v }
	return []models.AssetClass{
		{
			Name:             "Real Estate",
			GrowthRateLow:    p(2), GrowthRateMedium: p(5), GrowthRateHigh: p(8),
			ExpenseCategories: []models.ExpenseCategory{
				{Name: "Council Rates"}, {Name: "Insurance"}, {Name: "Maintenance"}, {Name: "Property Management"},
			},
		},
		{
			Name:             "Cash",
			GrowthRateLow:    p(0), GrowthRateMedium: p(0), GrowthRateHigh: p(0),
			DefaultIncomeYield: p(2.5),
		},
		{
			Name:             "Shares",
			GrowthRateLow:    p(3), GrowthRateMedium: p(6), GrowthRateHigh: p(9),
			DefaultIncomeYield: p(4),
			ExpenseCategories: []models.ExpenseCategory{{Name: "Brokerage"}, {Name: "Management Fees"}},
		},
		{
			Name:          "Income",
			GrowthRateLow: p(1), GrowthRateMedium: p(2.5), GrowthRateHigh: p(4),
		},
		{
			Name:        "Loans",
			IsLiability: true,
			GrowthRateLow: p(0), GrowthRateMedium: p(0), GrowthRateHigh: p(0),
		},
		{
			Name: "Other",
		},
	}
}

// SeedDefaults creates the default asset classes for a new user.
func (s *assetClassService) SeedDefaults(userID string) error {
	classes := defaultAssetClasses()
	for i := range classes {
		classes[i].UserID = userID
	}
	if err := s.db.Create(&classes).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateAssetClass creates a user-defined asset class.
func (s *assetClassService) CreateAssetClass(userID string, class *models.AssetClass) (*models.AssetClass, error) {
	class.ID = ""
	class.UserID = userID
	if err := s.db.Create(class).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return class, nil
}

// GetUserAssetClasses lists the user's asset classes with their expense
// category templates.
func (s *assetClassService) GetUserAssetClasses(userID string) ([]models.AssetClass, error) {
	var classes []models.AssetClass
	if err := s.db.Preload("ExpenseCategories").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&classes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return classes, nil
}

// GetAssetClassByID retrieves one of the user's asset classes.
func (s *assetClassService) GetAssetClassByID(userID, classID string) (*models.AssetClass, error) {
	var class models.AssetClass
	if err := s.db.Preload("ExpenseCategories").
		Where("id = ? AND user_id = ?", classID, userID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetClassNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &class, nil
}

// UpdateAssetClass updates name, liability flag, rates and yield.
func (s *assetClassService) UpdateAssetClass(userID, classID string, update *models.AssetClass) (*models.AssetClass, error) {
	class, err := s.GetAssetClassByID(userID, classID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":                 update.Name,
		"is_liability":         update.IsLiability,
		"growth_rate_low":      update.GrowthRateLow,
		"growth_rate_medium":   update.GrowthRateMedium,
		"growth_rate_high":     update.GrowthRateHigh,
		"default_income_yield": update.DefaultIncomeYield,
	}
	if err := s.db.Model(class).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetAssetClassByID(userID, classID)
}

// DeleteAssetClass removes an asset class that no holding references.
func (s *assetClassService) DeleteAssetClass(userID, classID string) error {
	class, err := s.GetAssetClassByID(userID, classID)
	if err != nil {
		return err
	}

	var holdings int64
	if err := s.db.Model(&models.Holding{}).Where("asset_class_id = ?", classID).Count(&holdings).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if holdings > 0 {
		return apperrors.ErrAssetClassInUse
	}

	if err := s.db.Delete(class).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
