package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "prospect/internal/errors"
	"prospect/internal/models"
	"prospect/internal/projection"
)

// projectionService assembles projection inputs from the database and runs
// the engine. The engine itself stays pure; all I/O lives here.
type projectionService struct {
	db       *gorm.DB
	holdings HoldingServicer
	settings SettingsServicer
}

// NewProjectionService creates a new ProjectionServicer.
func NewProjectionService(db *gorm.DB, holdings HoldingServicer, settings SettingsServicer) ProjectionServicer {
	return &projectionService{db: db, holdings: holdings, settings: settings}
}

// DefaultConfig derives the projection defaults for a user from the system
// settings and the user's interface mode.
func (s *projectionService) DefaultConfig(userID string) (projection.Config, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return projection.Config{}, apperrors.ErrUserNotFound
		}
		return projection.Config{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	settings, err := s.settings.Get()
	if err != nil {
		return projection.Config{}, err
	}

	return projection.DefaultConfig(*settings, user.Mode), nil
}

// Run executes a projection for the user. Caller overrides are merged over
// the derived defaults; nil override fields keep the default.
func (s *projectionService) Run(userID string, overrides ProjectionOverrides) (*projection.Result, error) {
	cfg, err := s.DefaultConfig(userID)
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg, overrides)

	if cfg.Horizon() < 1 || cfg.Horizon() > 50 {
		return nil, apperrors.ErrInvalidProjection
	}

	holdings, err := s.holdings.GetAllUserHoldings(userID)
	if err != nil {
		return nil, err
	}

	classes, types, err := s.loadLookups(userID)
	if err != nil {
		return nil, err
	}

	return projection.Project(projection.Input{
		Holdings: holdings,
		Classes:  classes,
		Types:    types,
		Config:   cfg,
		Now:      time.Now().UTC(),
	}), nil
}

func applyOverrides(cfg *projection.Config, o ProjectionOverrides) {
	if o.InflationRate != nil {
		cfg.InflationRate = *o.InflationRate
	}
	if o.Scenario != nil {
		cfg.Scenario = *o.Scenario
	}
	if o.IncludeIncome != nil {
		cfg.IncludeIncome = *o.IncludeIncome
	}
	if o.IncludeExpenses != nil {
		cfg.IncludeExpenses = *o.IncludeExpenses
	}
	if o.Period != nil {
		cfg.Period = *o.Period
		// A named period replaces the explicit count unless the caller
		// also overrides the count below.
		cfg.YearsToProject = 0
	}
	if o.YearsToProject != nil {
		cfg.YearsToProject = *o.YearsToProject
	}
	if o.ReinvestIncome != nil {
		cfg.ReinvestIncome = *o.ReinvestIncome
	}
	if o.EnabledAssetClasses != nil {
		cfg.EnabledAssetClasses = o.EnabledAssetClasses
	}
	if o.EnabledHoldingTypes != nil {
		cfg.EnabledHoldingTypes = o.EnabledHoldingTypes
	}
	if o.IncludeHidden != nil {
		cfg.IncludeHidden = *o.IncludeHidden
	}
	if o.ExcludeLiabilities != nil {
		cfg.ExcludeLiabilities = *o.ExcludeLiabilities
	}
	if o.CalculateAfterTax != nil {
		cfg.CalculateAfterTax = *o.CalculateAfterTax
	}
}

// loadLookups fetches the user's asset classes and holding types keyed by ID
// for the engine's rate and name resolution.
func (s *projectionService) loadLookups(userID string) (map[string]models.AssetClass, map[string]models.HoldingType, error) {
	var classList []models.AssetClass
	if err := s.db.Where("user_id = ?", userID).Find(&classList).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var typeList []models.HoldingType
	if err := s.db.Where("user_id = ?", userID).Find(&typeList).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	classes := make(map[string]models.AssetClass, len(classList))
	for _, c := range classList {
		classes[c.ID] = c
	}
	types := make(map[string]models.HoldingType, len(typeList))
	for _, t := range typeList {
		types[t.ID] = t
	}
	return classes, types, nil
}
